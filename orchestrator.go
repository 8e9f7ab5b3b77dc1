// Package patientview renders people rosters (name, gender, birthday and
// computed age) as HTML tables and themed pages.
package patientview

import (
	"context"

	"github.com/goliatone/go-patientview/pkg/orchestrator"
	"github.com/goliatone/go-patientview/pkg/person"
	"github.com/goliatone/go-patientview/pkg/render"
)

// RenderOptions describes per-request overrides such as the reference date,
// column labels, page title and notes.
type RenderOptions = render.RenderOptions

// Person aliases person.Person for callers building rosters in code.
type Person = person.Person

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the roster at path and renders it using the named
// renderer ("table" or "page").
func GenerateHTML(ctx context.Context, path, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:        path,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}

// GenerateHTMLFromRoster renders people already held in memory, bypassing the
// loader stage while still delegating to the orchestrator.
func GenerateHTMLFromRoster(ctx context.Context, roster []Person, rendererName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Roster:        roster,
		Renderer:      rendererName,
		RenderOptions: opts,
	})
}
