// Package page renders a people roster as a complete HTML document: the
// roster table, sanitized notes and optional go-theme styling, laid out by a
// pongo2 template.
package page

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-patientview/pkg/markup"
	"github.com/goliatone/go-patientview/pkg/person"
	"github.com/goliatone/go-patientview/pkg/render"
	"github.com/goliatone/go-patientview/pkg/render/template"
	"github.com/goliatone/go-patientview/pkg/render/template/gotemplate"
	"github.com/goliatone/go-patientview/pkg/renderers/table"
)

// Name is the registry name of the page renderer.
const Name = "page"

const (
	defaultTemplate = "page"
	defaultTitle    = "Patients"
)

// Option configures the page renderer.
type Option func(*Renderer)

// WithTemplateRenderer swaps the template engine. The engine must be able to
// resolve the template configured with WithTemplate.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if engine != nil {
			r.templates = engine
		}
	}
}

// WithTemplate sets the template name rendered for each page.
func WithTemplate(name string) Option {
	return func(r *Renderer) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			r.templateName = trimmed
		}
	}
}

// WithTable sets the table renderer used for the roster.
func WithTable(t *table.Renderer) Option {
	return func(r *Renderer) {
		if t != nil {
			r.table = t
		}
	}
}

// WithTheme applies an already resolved theme.
func WithTheme(resolved *Theme) Option {
	return func(r *Renderer) {
		r.theme = resolved
	}
}

// WithThemeSelector resolves the theme through a go-theme selector at render
// time.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		r.selector = selector
		r.themeName = strings.TrimSpace(name)
		r.themeVariant = strings.TrimSpace(variant)
	}
}

// Renderer implements render.Renderer.
type Renderer struct {
	templates    template.TemplateRenderer
	templateName string
	table        *table.Renderer
	notes        markup.Wrapper

	theme        *Theme
	selector     theme.ThemeSelector
	themeName    string
	themeVariant string
}

var _ render.Renderer = (*Renderer)(nil)

// New builds a page renderer backed by the embedded templates unless
// WithTemplateRenderer supplies another engine.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templateName: defaultTemplate,
		notes: markup.NewWrapper(`aside class="note"`,
			markup.WithCompact(false),
			markup.WithIndent("  "),
			markup.WithSanitizer(markup.UGCSanitizer()),
		),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}

	if r.table == nil {
		r.table = table.New(table.WithTableAttrs(`class="roster"`), table.WithIndent("  "))
	}
	if r.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("page: template engine: %w", err)
		}
		r.templates = engine
	}
	return r, nil
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render implements render.Renderer.
func (r *Renderer) Render(ctx context.Context, roster []person.Person, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fragment, err := r.table.Fragment(roster, options)
	if err != nil {
		return nil, fmt.Errorf("page: %w", err)
	}

	notes := make([]string, 0, len(options.Notes))
	for i, note := range options.Notes {
		if strings.TrimSpace(note) == "" {
			continue
		}
		html, err := r.notes.Render(note, markup.RenderOptions{Strip: true})
		if err != nil {
			return nil, fmt.Errorf("page: note %d: %w", i, err)
		}
		notes = append(notes, html)
	}

	resolved, err := r.resolveTheme()
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = defaultTitle
	}

	data := map[string]any{
		"title": title,
		"table": fragment,
		"notes": notes,
		"theme": themeContext(resolved),
	}
	out, err := r.templates.RenderTemplate(r.templateName, data)
	if err != nil {
		return nil, fmt.Errorf("page: render template: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) resolveTheme() (*Theme, error) {
	if r.selector == nil {
		return r.theme, nil
	}
	selection, err := r.selector.Select(r.themeName, r.themeVariant)
	if err != nil {
		return nil, fmt.Errorf("page: select theme: %w", err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, errors.New("page: theme selector returned no manifest")
	}
	return ResolveTheme(selection.Manifest, selection.Variant)
}

func themeContext(t *Theme) map[string]any {
	if t == nil {
		return map[string]any{}
	}
	ctx := map[string]any{
		"name":       t.Name,
		"variant":    t.Variant,
		"stylesheet": t.Stylesheet,
	}
	if len(t.Tokens) > 0 {
		ctx["tokens"] = t.Tokens
	}
	return ctx
}
