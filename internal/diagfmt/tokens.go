package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"py2coffee/internal/token"
)

// TokenOutput is one token in the machine-readable dump.
type TokenOutput struct {
	Kind     string `json:"kind"`
	Val      string `json:"val,omitempty"`
	StartRow uint32 `json:"start_row"`
	StartCol uint32 `json:"start_col"`
	EndRow   uint32 `json:"end_row"`
	EndCol   uint32 `json:"end_col"`
}

// FormatTokensPretty dumps a token stream in a human-readable format.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%4d: %-8s", i+1, tok.Kind.String())
		if tok.Val != "" {
			fmt.Fprintf(w, " %q", tok.Val)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			tok.Start.Row, tok.Start.Col, tok.End.Row, tok.End.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON dumps a token stream as JSON.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Val:      tok.Val,
			StartRow: tok.Start.Row,
			StartCol: tok.Start.Col,
			EndRow:   tok.End.Row,
			EndCol:   tok.End.Col,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
