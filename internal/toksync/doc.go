// Package toksync rebuilds the textual context a parse discards. It indexes
// the raw token stream by physical line and hands the emitter verbatim
// source fragments: leading comment and blank lines, and original string
// literal spellings.
package toksync
