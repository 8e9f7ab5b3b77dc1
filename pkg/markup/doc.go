// Package markup renders small HTML fragments. A Wrapper places content
// inside a fixed tag pair, optionally escaping it and indenting each line; a
// Table composes wrappers to render ordered records as a table.
//
// Output is deterministic: the void element list and the entity table are
// fixed, and the line separator is always "\n".
package markup
