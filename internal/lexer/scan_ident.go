package lexer

import (
	"golang.org/x/text/unicode/norm"

	"py2coffee/internal/token"
)

// scanNameOrString scans an identifier or keyword. A run of prefix letters
// immediately followed by a quote is handed to the string scanner so that
// r'...', b"...", f'''...''' and friends lex as one literal.
func (lx *lexer) scanNameOrString() {
	line := lx.lines[lx.row]
	start := lx.col
	for lx.col < len(line) && isIdentCont(line[lx.col]) {
		lx.col++
	}
	name := line[start:lx.col]

	if lx.col < len(line) && (line[lx.col] == '"' || line[lx.col] == '\'') && isStringPrefix(name) {
		lx.col = start
		lx.scanString(start)
		return
	}

	// Non-ASCII identifiers carry their NFKC form, matching how the
	// language itself folds identifier spellings.
	if !isASCII(name) {
		name = norm.NFKC.String(name)
	}
	lx.emit(token.Name, name, lx.row, start, lx.row, lx.col)
}

// isStringPrefix reports whether s is a valid literal prefix: any
// case-insensitive combination of r, b, u and f that the language accepts.
func isStringPrefix(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	seen := [4]bool{}
	for i := 0; i < len(s); i++ {
		var slot int
		switch s[i] {
		case 'r', 'R':
			slot = 0
		case 'b', 'B':
			slot = 1
		case 'u', 'U':
			slot = 2
		case 'f', 'F':
			slot = 3
		default:
			return false
		}
		if seen[slot] {
			return false
		}
		seen[slot] = true
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
