// Package template defines the renderer-agnostic template interface. The
// gotemplate subpackage implements it on top of pongo2.
package template
