// Package pyast defines the Python syntax tree the parser produces and the
// emitter walks. Nodes own their children; trees are built once per file,
// never mutated afterwards, and never shared across translations.
package pyast
