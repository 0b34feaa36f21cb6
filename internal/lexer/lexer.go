package lexer

import (
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/source"
	"py2coffee/internal/token"
)

// lexer tokenizes one file line by line. A logical line may span several
// physical lines through bracket nesting or a trailing backslash; the
// indentation stack only moves at the start of a logical line.
type lexer struct {
	sf         *source.File
	opts       Options
	lines      []string // physical lines, no trailing '\n'
	lineStarts []uint32 // byte offset of each physical line
	row        int      // 0-based physical line
	col        int      // byte offset within lines[row]
	indents    []int
	depth      int // open bracket nesting
	toks       []token.Token
}

// Tokenize produces the full token stream for a file. Lexical problems are
// reported through opts.Reporter and the stream degrades instead of
// stopping, so a single bad literal does not lose the rest of the file.
func Tokenize(sf *source.File, opts Options) []token.Token {
	opts = opts.withDefaults()
	lx := &lexer{
		sf:      sf,
		opts:    opts,
		indents: []int{0},
	}
	lx.splitLines()
	lx.run()
	return lx.toks
}

func (lx *lexer) splitLines() {
	content := string(lx.sf.Content)
	trimmed := strings.TrimSuffix(content, "\n")
	if trimmed == "" && content == "" {
		return
	}
	lx.lines = strings.Split(trimmed, "\n")
	lx.lineStarts = make([]uint32, len(lx.lines))
	off := uint32(0)
	for i, line := range lx.lines {
		lx.lineStarts[i] = off
		off += uint32(len(line)) + 1
	}
}

func (lx *lexer) run() {
	for lx.row < len(lx.lines) {
		line := lx.lines[lx.row]
		width, off := lx.measureIndent(line)
		rest := line[off:]

		// Blank and comment-only lines never touch the indent stack.
		if rest == "" {
			lx.emitBlankLine()
			lx.row++
			continue
		}
		if rest[0] == '#' {
			lx.col = off
			lx.emitComment()
			lx.emitBlankLine()
			lx.row++
			continue
		}

		lx.applyIndent(width, off)
		lx.col = off
		lx.scanLogicalLine()
	}
	lx.finish()
}

// measureIndent returns the indentation width of a line (tabs advance to
// the next tab stop) and the byte offset of its first non-blank character.
func (lx *lexer) measureIndent(line string) (width, off int) {
	for off < len(line) {
		switch line[off] {
		case ' ':
			width++
		case '\t':
			width = (width/lx.opts.TabSize + 1) * lx.opts.TabSize
		default:
			return width, off
		}
		off++
	}
	return width, off
}

func (lx *lexer) applyIndent(width, off int) {
	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		lx.emit(token.Indent, lx.lines[lx.row][:off], lx.row, 0, lx.row, off)
	case width < top:
		for len(lx.indents) > 1 && width < lx.indents[len(lx.indents)-1] {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.emit(token.Dedent, "", lx.row, off, lx.row, off)
		}
		if width != lx.indents[len(lx.indents)-1] {
			diag.ReportError(lx.opts.Reporter, diag.LexBadIndent, lx.span(lx.row, 0, off),
				"dedent does not match any outer indentation level")
			lx.indents[len(lx.indents)-1] = width
		}
	}
}

// scanLogicalLine consumes one logical line: everything up to and including
// the Newline token, following bracket and backslash continuations.
func (lx *lexer) scanLogicalLine() {
	for {
		if lx.row >= len(lx.lines) {
			return
		}
		line := lx.lines[lx.row]
		if lx.col >= len(line) {
			if lx.depth > 0 {
				lx.emit(token.NL, "\n", lx.row, lx.col, lx.row, lx.col+1)
				if !lx.nextLine() {
					return
				}
				continue
			}
			lx.emit(token.Newline, "\n", lx.row, lx.col, lx.row, lx.col+1)
			lx.nextLine()
			return
		}

		ch := line[lx.col]
		switch {
		case ch == ' ' || ch == '\t':
			lx.col++
		case ch == '\\' && lx.col == len(line)-1:
			if !lx.nextLine() {
				return
			}
		case ch == '#':
			lx.emitComment()
		case isIdentStart(ch):
			lx.scanNameOrString()
		case isDigit(ch):
			lx.scanNumber()
		case ch == '.' && lx.col+1 < len(line) && isDigit(line[lx.col+1]):
			lx.scanNumber()
		case ch == '"' || ch == '\'':
			lx.scanString(lx.col)
		default:
			lx.scanOp()
		}
	}
}

// emitBlankLine records the non-logical newline that ends a blank or
// comment-only physical line.
func (lx *lexer) emitBlankLine() {
	end := len(lx.lines[lx.row])
	lx.emit(token.NL, "\n", lx.row, end, lx.row, end+1)
}

func (lx *lexer) emitComment() {
	start := lx.col
	lx.col = len(lx.lines[lx.row])
	lx.emit(token.Comment, lx.lines[lx.row][start:], lx.row, start, lx.row, lx.col)
}

func (lx *lexer) nextLine() bool {
	lx.row++
	lx.col = 0
	return lx.row < len(lx.lines)
}

func (lx *lexer) finish() {
	if lx.depth > 0 {
		diag.ReportError(lx.opts.Reporter, diag.LexUnclosedBracket,
			lx.span(len(lx.lines)-1, 0, 0), "bracket left open at end of file")
	}
	end := len(lx.lines)
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.emit(token.Dedent, "", end, 0, end, 0)
	}
	lx.emit(token.EOF, "", end, 0, end, 0)
}

// emit appends a token. Raw always carries the full physical line the token
// starts on; comment and blank-line recovery reads it back verbatim.
func (lx *lexer) emit(kind token.Kind, val string, r0, c0, r1, c1 int) {
	raw := "\n"
	if r0 < len(lx.lines) {
		raw = lx.lines[r0] + "\n"
	}
	lx.toks = append(lx.toks, token.Token{
		Kind:  kind,
		Val:   val,
		Raw:   raw,
		Start: pos(r0, c0),
		End:   pos(r1, c1),
	})
}

// span maps a physical-line byte range onto file offsets for diagnostics.
func (lx *lexer) span(row, c0, c1 int) source.Span {
	if row >= len(lx.lineStarts) {
		off := uint32(len(lx.sf.Content))
		return source.Span{File: lx.sf.ID, Start: off, End: off}
	}
	base := lx.lineStarts[row]
	return source.Span{File: lx.sf.ID, Start: base + uint32(c0), End: base + uint32(c1)}
}
