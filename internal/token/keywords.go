package token

// Python keywords relevant to the translated grammar. Name tokens whose
// value appears here are treated as keywords by the parser.
var keywords = map[string]struct{}{
	"and":      {},
	"as":       {},
	"assert":   {},
	"break":    {},
	"class":    {},
	"continue": {},
	"def":      {},
	"del":      {},
	"elif":     {},
	"else":     {},
	"except":   {},
	"finally":  {},
	"for":      {},
	"from":     {},
	"global":   {},
	"if":       {},
	"import":   {},
	"in":       {},
	"is":       {},
	"lambda":   {},
	"not":      {},
	"or":       {},
	"pass":     {},
	"raise":    {},
	"return":   {},
	"try":      {},
	"while":    {},
	"with":     {},
	"yield":    {},
	"None":     {},
	"True":     {},
	"False":    {},
}

// IsKeyword reports whether s is a Python keyword.
func IsKeyword(s string) bool {
	_, ok := keywords[s]
	return ok
}

// IsKeywordToken reports whether the token is a Name spelling a keyword.
func (t Token) IsKeywordToken() bool {
	if t.Kind != Name {
		return false
	}
	return IsKeyword(t.Val)
}
