package toksync

import (
	"fmt"
	"strings"

	"py2coffee/internal/diag"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
	"py2coffee/internal/token"
)

// Sync re-synchronizes a syntax tree against the token stream it was parsed
// from. It buckets every token onto a physical line, derives the comment and
// blank lines the parser discarded, and queues string tokens per line so the
// emitter can recover original literal spellings.
//
// A Sync is owned by exactly one traversal. The leading-lines cursor is
// monotonic across a whole-file walk and is never reset.
type Sync struct {
	sf    *source.File
	lines []string // physical lines, right-stripped

	lineTokens   [][]token.Token // index: 0-based line; length len(lines)+1 (EOF sentinel)
	ignoredLines []*token.Token  // per line: full-line comment, blank-line token, or nil
	stringQueues [][]token.Token // per line: FIFO of string tokens

	firstLeadingLine int // 0-based index of the first line not yet attributed

	reporter diag.Reporter
}

// New builds a Sync for one file. It fails when two full-line comment tokens
// land on the same physical line, which signals a lexer/parser mismatch and
// is not recoverable.
func New(sf *source.File, tokens []token.Token, reporter diag.Reporter) (*Sync, error) {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	s := &Sync{
		sf:       sf,
		lines:    splitLines(string(sf.Content)),
		reporter: reporter,
	}
	// Order matters: buckets feed both derived views.
	s.makeLineTokens(tokens)
	if err := s.makeIgnoredLines(); err != nil {
		return nil, err
	}
	s.makeStringQueues()
	return s, nil
}

// splitLines splits on '\n' and right-strips each line. A trailing newline
// does not open an extra line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimRight(p, " \t\r")
	}
	return parts
}

// makeLineTokens buckets every token by physical line. Rows are 1-based; a
// token buckets to its starting row except multi-line strings, which bucket
// to their ending row. The slice carries one sentinel entry past the last
// line for EOF tokens.
func (s *Sync) makeLineTokens(tokens []token.Token) {
	n := len(s.lines)
	s.lineTokens = make([][]token.Token, n+1)
	for _, tok := range tokens {
		line := int(tok.BucketRow()) - 1
		if line < 0 {
			line = 0
		}
		if line > n {
			line = n
		}
		s.lineTokens[line] = append(s.lineTokens[line], tok)
	}
}

// makeIgnoredLines derives, per line, the token leading-line recovery will
// replay: a full-line comment, a blank-line token, or nothing. At most one
// full-line comment may exist per line.
func (s *Sync) makeIgnoredLines() error {
	s.ignoredLines = make([]*token.Token, len(s.lineTokens))
	for i, toks := range s.lineTokens {
		var comment *token.Token
		for j := range toks {
			if toks[j].IsFullLineComment() {
				if comment != nil {
					diag.ReportError(s.reporter, diag.SyncCommentCollision, s.lineSpan(i),
						fmt.Sprintf("line %d carries more than one full-line comment", i+1))
					return fmt.Errorf("toksync: multiple full-line comments on line %d", i+1)
				}
				comment = &toks[j]
			}
		}
		switch {
		case comment != nil:
			s.ignoredLines[i] = comment
		case s.isBlankLine(toks):
			nl := token.NLToken()
			s.ignoredLines[i] = &nl
		}
	}

	s.firstLeadingLine = len(s.ignoredLines)
	for i, tok := range s.ignoredLines {
		if tok != nil {
			s.firstLeadingLine = i
			break
		}
	}
	return nil
}

// A blank line buckets exactly one token and it is a non-logical newline.
func (s *Sync) isBlankLine(toks []token.Token) bool {
	return len(toks) == 1 && toks[0].Kind == token.NL
}

func (s *Sync) makeStringQueues() {
	s.stringQueues = make([][]token.Token, len(s.lineTokens))
	for i, toks := range s.lineTokens {
		for _, tok := range toks {
			if tok.Kind == token.String {
				s.stringQueues[i] = append(s.stringQueues[i], tok)
			}
		}
	}
}

// LeadingLines returns the rendered comment and blank lines preceding the
// node, each ending in a newline, and advances the cursor past them.
//
// Calls must arrive with non-decreasing node lines; the emitter's
// depth-first, left-to-right walk guarantees that. An out-of-order call
// yields incomplete or duplicated leading context, never a crash.
func (s *Sync) LeadingLines(n pyast.Node) []string {
	if n == nil || n.Line() == 0 {
		return nil
	}
	var leading []string
	i, stop := s.firstLeadingLine, int(n.Line())
	if stop > len(s.ignoredLines) {
		stop = len(s.ignoredLines)
	}
	for i < stop {
		if tok := s.ignoredLines[i]; tok != nil {
			leading = append(leading, strings.TrimRight(tok.Raw, " \t\r\n")+"\n")
		}
		i++
	}
	if i > s.firstLeadingLine {
		s.firstLeadingLine = i
	}
	return leading
}

// LeadingString joins LeadingLines into one string.
func (s *Sync) LeadingString(n pyast.Node) string {
	return strings.Join(s.LeadingLines(n), "")
}

// RecoverString pops the next string token queued on the node's line and
// returns its original spelling, quoting and escapes included. On underflow
// it reports a diagnostic and falls back to the value stored on the node;
// the file keeps translating.
func (s *Sync) RecoverString(n *pyast.Str) string {
	line := int(n.Line()) - 1
	if line >= 0 && line < len(s.stringQueues) && len(s.stringQueues[line]) > 0 {
		tok := s.stringQueues[line][0]
		s.stringQueues[line] = s.stringQueues[line][1:]
		return tok.Val
	}
	diag.ReportWarning(s.reporter, diag.SyncStringUnderflow, s.lineSpan(line),
		fmt.Sprintf("no string token left on line %d; using parsed value", n.Line()))
	return n.Value
}

// RawLineSpan returns the verbatim source line(s) for a node, following
// backslash continuations onto consecutive lines when followContinuations
// is set. Diagnostic use only; never part of emitted output.
func (s *Sync) RawLineSpan(n pyast.Node, followContinuations bool) string {
	if n == nil || n.Line() == 0 {
		return fmt.Sprintf("<no line> for %s", kindOf(n))
	}
	i := int(n.Line()) - 1
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	if !followContinuations {
		return s.lines[i]
	}
	var b strings.Builder
	for i < len(s.lines) {
		line := s.lines[i]
		if strings.HasSuffix(line, "\\") {
			b.WriteString(line[:len(line)-1])
			i++
			continue
		}
		b.WriteString(line)
		break
	}
	return b.String()
}

func kindOf(n pyast.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}

// lineSpan builds a span covering the given 0-based line, for diagnostics.
func (s *Sync) lineSpan(line int) source.Span {
	if s.sf == nil || line < 0 {
		return source.Span{}
	}
	var start, end uint32
	if line == 0 {
		start = 0
	} else if line-1 < len(s.sf.LineIdx) {
		start = s.sf.LineIdx[line-1] + 1
	} else {
		start = uint32(len(s.sf.Content))
	}
	if line < len(s.sf.LineIdx) {
		end = s.sf.LineIdx[line]
	} else {
		end = uint32(len(s.sf.Content))
	}
	if end < start {
		end = start
	}
	return source.Span{File: s.sf.ID, Start: start, End: end}
}
