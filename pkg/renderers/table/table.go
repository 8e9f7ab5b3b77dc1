// Package table renders a people roster as an HTML table fragment.
package table

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-patientview/pkg/markup"
	"github.com/goliatone/go-patientview/pkg/person"
	"github.com/goliatone/go-patientview/pkg/render"
)

// Name is the registry name of the table renderer.
const Name = "table"

// ErrEmptyRoster is returned when there is nobody to render.
var ErrEmptyRoster = errors.New("table: roster is empty")

// Option configures the renderer.
type Option func(*config)

type config struct {
	attrs   string
	compact bool
	indent  string
}

// WithTableAttrs sets attributes on the table element, e.g. `class="roster"`.
func WithTableAttrs(attrs string) Option {
	return func(cfg *config) {
		cfg.attrs = strings.TrimSpace(attrs)
	}
}

// WithCompact renders the whole table on one line.
func WithCompact(compact bool) Option {
	return func(cfg *config) {
		cfg.compact = compact
	}
}

// WithIndent sets the nesting indent used when not compact.
func WithIndent(indent string) Option {
	return func(cfg *config) {
		cfg.indent = indent
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	table markup.Table
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a table renderer. Without options it produces an indented table
// with four-space nesting.
func New(options ...Option) *Renderer {
	cfg := config{indent: "    "}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Renderer{
		table: markup.NewTable(cfg.attrs, markup.WithCompact(cfg.compact), markup.WithIndent(cfg.indent)),
	}
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, roster []person.Person, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	html, err := r.Fragment(roster, options)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// Fragment returns the table markup for roster.
func (r *Renderer) Fragment(roster []person.Person, options render.RenderOptions) (string, error) {
	html, err := r.table.Render(render.PersonRecords(roster, options.ReferenceDate()), options.Labels)
	if errors.Is(err, markup.ErrNoRecords) {
		return "", ErrEmptyRoster
	}
	if err != nil {
		return "", fmt.Errorf("table: render: %w", err)
	}
	return html, nil
}
