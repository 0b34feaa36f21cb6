package lexer

import (
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/token"
)

// operators ordered longest first for maximal munch.
var operators = []string{
	"**=", "//=", ">>=", "<<=", "...",
	"**", "//", ">>", "<<", "<=", ">=", "==", "!=", "->", ":=",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "@=",
	"+", "-", "*", "/", "%", "&", "|", "^", "~", "<", ">",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", ";", "@", "=",
}

func (lx *lexer) scanOp() {
	line := lx.lines[lx.row]
	rest := line[lx.col:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			start := lx.col
			lx.col += len(op)
			lx.trackDepth(op, start)
			lx.emit(token.Op, op, lx.row, start, lx.row, lx.col)
			return
		}
	}
	diag.ReportError(lx.opts.Reporter, diag.LexUnknownChar,
		lx.span(lx.row, lx.col, lx.col+1), "unexpected character "+string(rune(rest[0])))
	start := lx.col
	lx.col++
	lx.emit(token.Invalid, rest[:1], lx.row, start, lx.row, lx.col)
}

func (lx *lexer) trackDepth(op string, col int) {
	switch op {
	case "(", "[", "{":
		lx.depth++
	case ")", "]", "}":
		if lx.depth == 0 {
			diag.ReportError(lx.opts.Reporter, diag.LexUnknownChar,
				lx.span(lx.row, col, col+1), "unmatched "+op)
			return
		}
		lx.depth--
	}
}
