package lexer

import "py2coffee/internal/diag"

const defaultTabSize = 8

// Options configures one tokenization pass.
type Options struct {
	// Reporter receives lexical diagnostics. Nil discards them.
	Reporter diag.Reporter
	// TabSize is the tab stop used when measuring indentation width.
	// Zero means the tokenizer default of 8.
	TabSize int
}

func (o Options) withDefaults() Options {
	if o.Reporter == nil {
		o.Reporter = diag.NopReporter{}
	}
	if o.TabSize <= 0 {
		o.TabSize = defaultTabSize
	}
	return o
}
