package parser

import (
	"fmt"

	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
	"py2coffee/internal/token"
)

// Parser builds a syntax tree from a token stream. Comment, NL and Invalid
// tokens are filtered up front; structure comes from Newline, Indent and
// Dedent. Errors are reported and the parser re-synchronizes at the next
// logical line, so one bad statement does not abandon the file.
type Parser struct {
	sf   *source.File
	toks []token.Token
	pos  int
	rep  diag.Reporter
}

func New(sf *source.File, toks []token.Token, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.Comment, token.NL, token.Invalid:
		default:
			filtered = append(filtered, t)
		}
	}
	if n := len(filtered); n == 0 || filtered[n-1].Kind != token.EOF {
		filtered = append(filtered, token.Token{Kind: token.EOF})
	}
	return &Parser{sf: sf, toks: filtered, rep: reporter}
}

// ParseModule parses the whole stream into a Module.
func (p *Parser) ParseModule() *pyast.Module {
	m := &pyast.Module{Base: pyast.Base{LineNo: 1}}
	for !p.at(token.EOF) {
		switch {
		case p.at(token.Newline):
			p.next()
		case p.at(token.Indent), p.at(token.Dedent):
			p.errorf(diag.SynUnexpectedToken, "unexpected %s at top level", p.cur().Kind)
			p.next()
		default:
			p.parseStatementInto(&m.Body)
		}
	}
	return m
}

func (p *Parser) cur() token.Token { return p.toks[p.pos] }

func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return p.toks[len(p.toks)-1]
}

func (p *Parser) next() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atOp(s string) bool {
	t := p.cur()
	return t.Kind == token.Op && t.Val == s
}

func (p *Parser) atKeyword(s string) bool {
	t := p.cur()
	return t.Kind == token.Name && t.Val == s && token.IsKeyword(s)
}

func (p *Parser) eatOp(s string) bool {
	if p.atOp(s) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) eatKeyword(s string) bool {
	if p.atKeyword(s) {
		p.next()
		return true
	}
	return false
}

func (p *Parser) expectOp(s string, code diag.Code) bool {
	if p.eatOp(s) {
		return true
	}
	p.errorf(code, "expected %q, found %q", s, p.cur().Val)
	return false
}

func (p *Parser) expectKeyword(s string) bool {
	if p.eatKeyword(s) {
		return true
	}
	p.errorf(diag.SynUnexpectedToken, "expected %q, found %q", s, p.cur().Val)
	return false
}

// expectName consumes an identifier and returns its spelling, or "" after
// reporting.
func (p *Parser) expectName() string {
	t := p.cur()
	if t.Kind == token.Name && !token.IsKeyword(t.Val) {
		p.next()
		return t.Val
	}
	p.errorf(diag.SynExpectIdentifier, "expected identifier, found %q", t.Val)
	return ""
}

func (p *Parser) errorf(code diag.Code, format string, args ...any) {
	diag.ReportError(p.rep, code, p.spanAt(p.cur()), fmt.Sprintf(format, args...))
}

// syncToNewline skips tokens through the end of the current logical line.
func (p *Parser) syncToNewline() {
	for !p.at(token.EOF) {
		if p.next().Kind == token.Newline {
			return
		}
	}
}

// endOfStmt reports whether the cursor sits where a small statement may end.
func (p *Parser) endOfStmt() bool {
	if p.at(token.Newline) || p.at(token.EOF) || p.at(token.Dedent) {
		return true
	}
	return p.atOp(";")
}

// spanAt maps a token back to file byte offsets for diagnostics.
func (p *Parser) spanAt(t token.Token) source.Span {
	if p.sf == nil {
		return source.Span{}
	}
	lineStart := func(row uint32) uint32 {
		if row <= 1 {
			return 0
		}
		idx := int(row) - 2
		if idx >= len(p.sf.LineIdx) {
			return uint32(len(p.sf.Content))
		}
		return p.sf.LineIdx[idx] + 1
	}
	return source.Span{
		File:  p.sf.ID,
		Start: lineStart(t.Start.Row) + t.Start.Col,
		End:   lineStart(t.End.Row) + t.End.Col,
	}
}

func base(t token.Token) pyast.Base {
	return pyast.Base{LineNo: t.Start.Row}
}
