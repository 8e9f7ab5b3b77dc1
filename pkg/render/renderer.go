package render

import (
	"context"

	"github.com/goliatone/go-patientview/pkg/person"
)

// Renderer converts a roster of people into a byte representation (an HTML
// fragment, a full page, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, roster []person.Person, options RenderOptions) ([]byte, error)
}
