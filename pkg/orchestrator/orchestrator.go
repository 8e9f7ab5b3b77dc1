package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-patientview/pkg/person"
	"github.com/goliatone/go-patientview/pkg/render"
	"github.com/goliatone/go-patientview/pkg/renderers/page"
	"github.com/goliatone/go-patientview/pkg/renderers/table"
)

const defaultRendererName = table.Name

// Loader reads a roster from a named source, usually a file path.
type Loader interface {
	Load(ctx context.Context, source string) ([]person.Person, error)
}

// LoaderFunc adapts plain functions to the Loader interface.
type LoaderFunc func(ctx context.Context, source string) ([]person.Person, error)

// Load executes the wrapped function.
func (fn LoaderFunc) Load(ctx context.Context, source string) ([]person.Person, error) {
	return fn(ctx, source)
}

// FileLoader loads CSV, YAML or JSON rosters from disk.
func FileLoader() Loader {
	return LoaderFunc(func(ctx context.Context, source string) ([]person.Person, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return person.LoadFile(source)
	})
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom roster loader.
func WithLoader(loader Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer applied to every roster before it
// is rendered. Repeated calls chain in order.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		if t != nil {
			o.transformers = append(o.transformers, t)
		}
	}
}

// WithPageOptions configures the built-in page renderer registered when no
// registry is injected.
func WithPageOptions(options ...page.Option) Option {
	return func(o *Orchestrator) {
		o.pageOptions = append(o.pageOptions, options...)
	}
}

// WithTableOptions configures the built-in table renderer registered when no
// registry is injected.
func WithTableOptions(options ...table.Option) Option {
	return func(o *Orchestrator) {
		o.tableOptions = append(o.tableOptions, options...)
	}
}

// Orchestrator coordinates loading, transforming and rendering a roster. It
// applies defaults (file loader, table and page renderers) while remaining
// open to dependency injection.
type Orchestrator struct {
	loader          Loader
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	tableOptions    []table.Option
	pageOptions     []page.Option
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a roster.
type Request struct {
	// Source is handed to the Loader. Optional when Roster is supplied.
	Source string

	// Roster bypasses the loader when the caller already holds the people.
	Roster []person.Person

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	RenderOptions render.RenderOptions
}

// Generate executes the loader → transformers → renderer sequence and returns
// the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	roster, err := o.resolveRoster(ctx, req)
	if err != nil {
		return nil, err
	}

	roster, err = Chain(o.transformers...).Transform(ctx, roster)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: transform roster: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, roster, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderers lists the names available to Request.Renderer.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveRoster(ctx context.Context, req Request) ([]person.Person, error) {
	if req.Roster != nil {
		return req.Roster, nil
	}
	if req.Source == "" {
		return nil, errors.New("orchestrator: source or roster is required")
	}
	roster, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load roster: %w", err)
	}
	return roster, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = FileLoader()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		o.registry.MustRegister(table.New(o.tableOptions...))
		pageRenderer, err := page.New(o.pageOptions...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default page renderer: %w", err)
			return
		}
		o.registry.MustRegister(pageRenderer)
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
