package render

import "github.com/goliatone/go-patientview/pkg/calendar"

// RenderOptions carry per-request data that renderers use without changing
// their construction-time configuration.
type RenderOptions struct {
	// Today is the reference date for ages. The zero value means the current
	// local date, resolved once per render via ReferenceDate.
	Today calendar.Date
	// Labels override column headers by position. Empty entries keep the
	// column key.
	Labels []string
	// Title is used by renderers that produce a full document.
	Title string
	// Notes are caller-supplied HTML snippets shown alongside the roster.
	// Renderers sanitize them before output.
	Notes []string
}

// ReferenceDate returns Today, falling back to the current local date.
func (o RenderOptions) ReferenceDate() calendar.Date {
	if o.Today.IsZero() {
		return calendar.Today()
	}
	return o.Today
}
