// Package render defines the Renderer contract for people rosters and a
// name-keyed Registry. Concrete renderers live under pkg/renderers.
package render
