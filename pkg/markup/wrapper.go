package markup

import (
	"errors"
	"strings"
)

// ErrUnsupportedContent is returned when Render receives a content value that
// is neither text, a fmt.Stringer, nil nor a slice or array.
var ErrUnsupportedContent = errors.New("markup: unsupported content type")

var voidElements = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"meta":   {},
	"param":  {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

// Wrapper renders content inside a fixed HTML tag pair. The tag metadata is
// derived once in NewWrapper; a Wrapper is an immutable value and may be used
// from multiple goroutines.
type Wrapper struct {
	tagName    string
	empty      bool
	openingTag string
	closingTag string

	compact   bool
	indent    string
	sanitizer Sanitizer
}

// NewWrapper builds a wrapper for tag, the full opening tag text without angle
// brackets (e.g. `div class="note"`). An empty tag formats content without
// wrapping it.
func NewWrapper(tag string, options ...Option) Wrapper {
	cfg := buildConfig(options)
	w := Wrapper{
		compact:   cfg.compact,
		indent:    cfg.indent,
		sanitizer: cfg.sanitizer,
	}

	tag = strings.TrimSpace(tag)
	if tag == "" {
		return w
	}

	w.tagName = strings.ToLower(strings.Fields(tag)[0])
	_, w.empty = voidElements[w.tagName]
	w.openingTag = "<" + tag + ">"
	if !w.empty {
		w.closingTag = "</" + w.tagName + ">"
	}
	return w
}

// TagName returns the lower-cased element name, like "div".
func (w Wrapper) TagName() string { return w.tagName }

// Empty reports whether the element is void and never carries content.
func (w Wrapper) Empty() bool { return w.empty }

// OpeningTag returns the opening tag including attributes, like
// `<div class="note">`, or "" for an untagged wrapper.
func (w Wrapper) OpeningTag() string { return w.openingTag }

// ClosingTag returns the closing tag, like "</div>". Void elements and
// untagged wrappers have none.
func (w Wrapper) ClosingTag() string { return w.closingTag }

// Compact reports whether the wrapper renders on a single line.
func (w Wrapper) Compact() bool { return w.compact }

// Indent returns the per-line prefix used in non-compact mode.
func (w Wrapper) Indent() string { return w.indent }

// Render wraps content in the configured tag. Content may be nil, text, a
// fmt.Stringer, or any slice or array whose elements are stringified; every
// piece is split on line breaks before layout. Void elements ignore content
// and return only the opening tag. The content value is never modified.
func (w Wrapper) Render(content any, opts RenderOptions) (string, error) {
	if w.empty {
		return w.openingTag, nil
	}

	lines, err := contentLines(content)
	if err != nil {
		return "", err
	}

	lines = w.filter(lines, opts)

	separator := w.separator()
	parts := make([]string, 0, 3)
	if w.openingTag != "" {
		parts = append(parts, w.openingTag)
	}
	if len(lines) > 0 {
		parts = append(parts, w.layout(lines, opts))
	}
	if w.closingTag != "" {
		parts = append(parts, w.closingTag)
	}
	return strings.Join(parts, separator), nil
}

// MustRender is Render for content known to be valid; it panics on error.
func (w Wrapper) MustRender(content any, opts RenderOptions) string {
	out, err := w.Render(content, opts)
	if err != nil {
		panic(err)
	}
	return out
}

func (w Wrapper) separator() string {
	if w.compact {
		return ""
	}
	return "\n"
}

// filter escapes or sanitizes lines. Sanitizing may drop every line.
func (w Wrapper) filter(lines []string, opts RenderOptions) []string {
	switch {
	case len(lines) == 0:
		return lines
	case opts.Escape:
		for i, line := range lines {
			lines[i] = Escape(line)
		}
		return lines
	case w.sanitizer != nil:
		return splitLines(w.sanitizer.Sanitize(strings.Join(lines, "\n")))
	default:
		return lines
	}
}

func (w Wrapper) layout(lines []string, opts RenderOptions) string {
	if w.compact {
		var b strings.Builder
		for _, line := range lines {
			b.WriteString(strings.TrimSpace(line))
		}
		return b.String()
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if opts.Strip {
			line = strings.TrimSpace(line)
		}
		out[i] = w.indent + line
	}
	return strings.Join(out, w.separator())
}
