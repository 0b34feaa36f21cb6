package lexer

import (
	"py2coffee/internal/diag"
	"py2coffee/internal/token"
)

// scanNumber scans a numeric literal: decimal, based (0x/0o/0b), float,
// exponent and imaginary forms, with underscore digit separators. Val is
// the exact source spelling.
func (lx *lexer) scanNumber() {
	line := lx.lines[lx.row]
	start := lx.col

	if line[lx.col] == '0' && lx.col+1 < len(line) {
		switch line[lx.col+1] {
		case 'x', 'X':
			lx.scanBasedNumber(start, isHexDigit)
			return
		case 'o', 'O':
			lx.scanBasedNumber(start, func(b byte) bool { return b >= '0' && b <= '7' })
			return
		case 'b', 'B':
			lx.scanBasedNumber(start, func(b byte) bool { return b == '0' || b == '1' })
			return
		}
	}

	lx.eatDigits()
	if lx.col < len(line) && line[lx.col] == '.' {
		lx.col++
		lx.eatDigits()
	}
	if lx.col < len(line) && (line[lx.col] == 'e' || line[lx.col] == 'E') {
		mark := lx.col
		lx.col++
		if lx.col < len(line) && (line[lx.col] == '+' || line[lx.col] == '-') {
			lx.col++
		}
		if lx.col < len(line) && isDigit(line[lx.col]) {
			lx.eatDigits()
		} else {
			// Not an exponent after all, back off.
			lx.col = mark
		}
	}
	if lx.col < len(line) && (line[lx.col] == 'j' || line[lx.col] == 'J') {
		lx.col++
	}
	lx.emit(token.Number, line[start:lx.col], lx.row, start, lx.row, lx.col)
}

func (lx *lexer) scanBasedNumber(start int, valid func(byte) bool) {
	line := lx.lines[lx.row]
	lx.col += 2
	digits := 0
	for lx.col < len(line) && (valid(line[lx.col]) || line[lx.col] == '_') {
		if line[lx.col] != '_' {
			digits++
		}
		lx.col++
	}
	if digits == 0 {
		diag.ReportError(lx.opts.Reporter, diag.LexBadNumber,
			lx.span(lx.row, start, lx.col), "numeric literal has a base prefix but no digits")
	}
	lx.emit(token.Number, line[start:lx.col], lx.row, start, lx.row, lx.col)
}

func (lx *lexer) eatDigits() {
	line := lx.lines[lx.row]
	for lx.col < len(line) && (isDigit(line[lx.col]) || line[lx.col] == '_') {
		lx.col++
	}
}
