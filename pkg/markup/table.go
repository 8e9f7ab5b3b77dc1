package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoRecords is returned when a table is rendered without records; the
// column set comes from the first record, so at least one is required.
var ErrNoRecords = errors.New("markup: table requires at least one record")

var cellOptions = RenderOptions{Escape: true, Strip: true}

// Table renders a sequence of records as an HTML table. Like Wrapper it is
// immutable once built.
type Table struct {
	table Wrapper
	thead Wrapper
	tbody Wrapper
	tr    Wrapper
	th    Wrapper
	td    Wrapper
}

// NewTable builds a table renderer. attrs is appended to the table tag (e.g.
// `class="roster"`). Compact and indent options apply to the table, its row
// groups and rows; cells are always rendered compactly.
func NewTable(attrs string, options ...Option) Table {
	cfg := buildConfig(options)
	layout := []Option{WithCompact(cfg.compact), WithIndent(cfg.indent)}

	tag := "table"
	if attrs = strings.TrimSpace(attrs); attrs != "" {
		tag += " " + attrs
	}

	return Table{
		table: NewWrapper(tag, layout...),
		thead: NewWrapper("thead", layout...),
		tbody: NewWrapper("tbody", layout...),
		tr:    NewWrapper("tr", layout...),
		th:    NewWrapper("th"),
		td:    NewWrapper("td"),
	}
}

// OpeningTag returns the table's opening tag, like `<table class="roster">`.
func (t Table) OpeningTag() string { return t.table.OpeningTag() }

// Render builds the table. Columns follow the key order of the first record;
// later records are read by those keys. labels[i], when present and
// non-empty, replaces the header text of column i. All cell text is escaped.
func (t Table) Render(records []Record, labels []string) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	columns := records[0].Keys()

	headerCells := make([]string, len(columns))
	for i, key := range columns {
		label := key
		if i < len(labels) && labels[i] != "" {
			label = labels[i]
		}
		cell, err := t.th.Render(label, cellOptions)
		if err != nil {
			return "", fmt.Errorf("markup: header %q: %w", key, err)
		}
		headerCells[i] = cell
	}
	headerRow, err := t.tr.Render(headerCells, RenderOptions{})
	if err != nil {
		return "", err
	}
	head, err := t.thead.Render(headerRow, RenderOptions{})
	if err != nil {
		return "", err
	}

	rows := make([]string, len(records))
	for r, record := range records {
		cells := make([]string, len(columns))
		for i, key := range columns {
			value, _ := record.Get(key)
			cell, err := t.td.Render(Stringify(value), cellOptions)
			if err != nil {
				return "", fmt.Errorf("markup: row %d column %q: %w", r, key, err)
			}
			cells[i] = cell
		}
		row, err := t.tr.Render(cells, RenderOptions{})
		if err != nil {
			return "", err
		}
		rows[r] = row
	}
	body, err := t.tbody.Render(strings.Join(rows, "\n"), RenderOptions{})
	if err != nil {
		return "", err
	}

	return t.table.Render(head+"\n"+body, RenderOptions{})
}
