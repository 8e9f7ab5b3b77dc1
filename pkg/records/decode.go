// Package records decodes YAML or JSON lists of mappings into ordered
// markup records. Key order in the source document is preserved, so the first
// mapping decides the table's column order.
package records

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-patientview/pkg/markup"
)

// ErrNotList is returned when the document root is not a sequence.
var ErrNotList = errors.New("records: document must be a list of mappings")

// Decode parses data as a YAML (or JSON) list of mappings. An empty document
// yields no records.
func Decode(data []byte) ([]markup.Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("records: parse: %w", err)
	}
	return fromDocument(&doc)
}

// Read is Decode over an io.Reader.
func Read(r io.Reader) ([]markup.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("records: read: %w", err)
	}
	return Decode(data)
}

func fromDocument(doc *yaml.Node) ([]markup.Record, error) {
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, nil
		}
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, ErrNotList
	}

	out := make([]markup.Record, 0, len(root.Content))
	for i, item := range root.Content {
		record, err := fromMapping(item)
		if err != nil {
			return nil, fmt.Errorf("records: item %d: %w", i, err)
		}
		out = append(out, record)
	}
	return out, nil
}

func fromMapping(node *yaml.Node) (markup.Record, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected mapping", node.Line)
	}

	record := make(markup.Record, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: keys must be scalars", key.Line)
		}

		var decoded any
		if value.Kind == yaml.ScalarNode {
			// Keep scalar text as written (dates, leading zeros).
			if value.Tag != "!!null" {
				decoded = value.Value
			}
		} else if err := value.Decode(&decoded); err != nil {
			return nil, fmt.Errorf("line %d: decode %q: %w", value.Line, key.Value, err)
		}
		record = append(record, markup.Field{Key: key.Value, Value: decoded})
	}
	return record, nil
}
