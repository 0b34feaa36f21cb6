// Package token defines the lexical token model for Python sources:
// token kinds, the token record with rendered and raw text, and the
// 1-based-row/0-based-column position convention shared by the lexer,
// the token synchronizer, and the emitter.
package token
