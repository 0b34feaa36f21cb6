package lexer

import (
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/token"
)

// scanString scans a string literal beginning at byte offset start on the
// current line, prefix letters included. Val keeps the exact source
// spelling: prefix, quotes, escapes, and for triple-quoted literals the
// embedded newlines.
func (lx *lexer) scanString(start int) {
	line := lx.lines[lx.row]
	startRow := lx.row

	i := start
	for i < len(line) && line[i] != '"' && line[i] != '\'' {
		i++
	}
	quote := line[i]
	prefix := line[start:i]
	raw := strings.ContainsAny(prefix, "rR")

	triple := i+2 < len(line) && line[i+1] == quote && line[i+2] == quote
	var b strings.Builder
	b.WriteString(prefix)

	if triple {
		b.WriteString(line[i : i+3])
		lx.col = i + 3
		lx.scanTripleTail(&b, quote, startRow, start)
		return
	}

	b.WriteByte(quote)
	lx.col = i + 1
	for {
		line = lx.lines[lx.row]
		if lx.col >= len(line) {
			lx.reportUnterminated(startRow, start)
			break
		}
		ch := line[lx.col]
		if ch == quote {
			b.WriteByte(ch)
			lx.col++
			break
		}
		if ch == '\\' && !raw {
			if lx.col == len(line)-1 {
				// Escaped newline: the literal continues on the next
				// physical line.
				b.WriteString("\\\n")
				if !lx.nextLine() {
					lx.reportUnterminated(startRow, start)
					break
				}
				continue
			}
			b.WriteByte(ch)
			b.WriteByte(line[lx.col+1])
			lx.col += 2
			continue
		}
		b.WriteByte(ch)
		lx.col++
	}
	lx.emitString(b.String(), startRow, start)
}

// scanTripleTail consumes the body of a triple-quoted literal, crossing
// physical lines until the closing run of three quotes.
func (lx *lexer) scanTripleTail(b *strings.Builder, quote byte, startRow, startCol int) {
	closer := strings.Repeat(string(quote), 3)
	for {
		line := lx.lines[lx.row]
		if idx := strings.Index(line[lx.col:], closer); idx >= 0 {
			end := lx.col + idx + 3
			b.WriteString(line[lx.col:end])
			lx.col = end
			lx.emitString(b.String(), startRow, startCol)
			return
		}
		b.WriteString(line[lx.col:])
		b.WriteByte('\n')
		if !lx.nextLine() {
			lx.reportUnterminated(startRow, startCol)
			lx.emitString(b.String(), startRow, startCol)
			return
		}
	}
}

// emitString appends a String token whose end position is the current
// cursor. The raw line is the literal's starting line.
func (lx *lexer) emitString(val string, startRow, startCol int) {
	lx.toks = append(lx.toks, token.Token{
		Kind:  token.String,
		Val:   val,
		Raw:   lx.lines[startRow] + "\n",
		Start: pos(startRow, startCol),
		End:   pos(lx.row, lx.col),
	})
}

func (lx *lexer) reportUnterminated(row, col int) {
	diag.ReportError(lx.opts.Reporter, diag.LexUnterminatedString,
		lx.span(row, col, len(lx.lines[row])), "string literal is not terminated")
}
