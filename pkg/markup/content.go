package markup

import (
	"fmt"
	"reflect"
	"strings"
)

var entityReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces &, <, > and " with their entities in a single pass over the
// input, so entities produced by the substitution are never escaped again.
func Escape(s string) string {
	return entityReplacer.Replace(s)
}

// contentLines normalises a Render argument into a fresh slice of lines.
// Text is split on line breaks. Each element of a slice or array is
// stringified and split the same way; an empty element still counts as one
// line.
func contentLines(content any) ([]string, error) {
	switch v := content.(type) {
	case nil:
		return nil, nil
	case string:
		return splitLines(v), nil
	case []byte:
		return splitLines(string(v)), nil
	case []string:
		var out []string
		for _, item := range v {
			out = appendLines(out, item)
		}
		return out, nil
	case []any:
		var out []string
		for _, item := range v {
			out = appendLines(out, Stringify(item))
		}
		return out, nil
	case fmt.Stringer:
		return splitLines(v.String()), nil
	}

	rv := reflect.ValueOf(content)
	switch rv.Kind() {
	case reflect.String:
		return splitLines(rv.String()), nil
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedContent, content)
	}
	var out []string
	for i := 0; i < rv.Len(); i++ {
		out = appendLines(out, Stringify(rv.Index(i).Interface()))
	}
	return out, nil
}

func appendLines(dst []string, text string) []string {
	lines := splitLines(text)
	if len(lines) == 0 {
		return append(dst, "")
	}
	return append(dst, lines...)
}

// Stringify converts a cell or content value to text. Strings pass through,
// nil becomes "" and everything else is formatted with fmt.Sprint.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce an empty final line, and empty input yields no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
