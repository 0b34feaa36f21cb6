// Package emit walks a Python syntax tree depth-first and produces
// CoffeeScript surface text. Dispatch is total over the grammar; leading
// comments, blank lines, and string spellings come back verbatim through
// the token synchronizer.
package emit
