package token

// Pos is a tokenizer position: 1-based row, 0-based column, the CPython
// tokenize convention.
type Pos struct {
	Row uint32
	Col uint32
}

// Token is a single lexical unit. Val holds the rendered token text as the
// lexer produced it (for strings this keeps the original quoting and
// escapes). Raw holds the full raw source line the token starts on, which
// backs comment and blank-line recovery.
type Token struct {
	Kind  Kind
	Val   string
	Raw   string
	Start Pos
	End   Pos
}

// BucketRow returns the physical line the token is attributed to: a
// multi-line string buckets to its ending row, everything else to its
// starting row.
func (t Token) BucketRow() uint32 {
	if t.Kind == String && t.End.Row > t.Start.Row {
		return t.End.Row
	}
	return t.Start.Row
}

// IsFullLineComment reports whether the token is a comment that owns its
// whole line, i.e. only whitespace precedes the '#'.
func (t Token) IsFullLineComment() bool {
	if t.Kind != Comment {
		return false
	}
	for i := 0; i < len(t.Raw); i++ {
		switch t.Raw[i] {
		case ' ', '\t':
		case '#':
			return true
		default:
			return false
		}
	}
	return false
}

// NLToken returns a synthetic blank-line token with "\n" as both value and
// raw text. Leading-line recovery emits it for blank source lines.
func NLToken() Token {
	return Token{Kind: NL, Val: "\n", Raw: "\n"}
}
