package token

// Kind represents the category of a Python source token. The set mirrors
// what CPython's tokenize module emits for the constructs the translator
// consumes.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Name represents an identifier or keyword token.
	Name
	// Number represents a numeric literal.
	Number
	// String represents a string literal, including triple-quoted strings.
	String
	// Op represents any operator or punctuation token.
	Op
	// Comment represents a '#' comment, full-line or trailing.
	Comment
	// Newline terminates a logical line.
	Newline
	// NL is a non-logical newline: a blank line or a line break inside
	// brackets.
	NL
	// Indent opens an indented block.
	Indent
	// Dedent closes an indented block.
	Dedent
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Name:
		return "name"
	case Number:
		return "number"
	case String:
		return "string"
	case Op:
		return "op"
	case Comment:
		return "comment"
	case Newline:
		return "newline"
	case NL:
		return "nl"
	case Indent:
		return "indent"
	case Dedent:
		return "dedent"
	}
	return "unknown"
}
