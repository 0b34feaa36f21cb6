package lexer_test

import (
	"strings"
	"testing"

	"py2coffee/internal/diag"
	"py2coffee/internal/lexer"
	"py2coffee/internal/source"
	"py2coffee/internal/token"
)

func tokenize(t *testing.T, input string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(input))
	bag := diag.NewBag(20)
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, input string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, bag := tokenize(t, input)
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("input %q: got %d tokens %v, want %d %v (diags: %s)",
			input, len(got), got, len(want), want, bagSummary(bag))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("input %q: token %d = %v, want %v", input, i, got[i], want[i])
		}
	}
	return toks
}

func bagSummary(bag *diag.Bag) string {
	if bag.Len() == 0 {
		return "<none>"
	}
	parts := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		parts = append(parts, d.Code.ID()+" "+d.Message)
	}
	return strings.Join(parts, "; ")
}

func TestSimpleStatement(t *testing.T) {
	toks := expectKinds(t, "x = 1\n",
		token.Name, token.Op, token.Number, token.Newline, token.EOF)
	if toks[0].Val != "x" || toks[1].Val != "=" || toks[2].Val != "1" {
		t.Errorf("unexpected values: %q %q %q", toks[0].Val, toks[1].Val, toks[2].Val)
	}
	if toks[0].Start.Row != 1 || toks[0].Start.Col != 0 {
		t.Errorf("start = %d:%d, want 1:0", toks[0].Start.Row, toks[0].Start.Col)
	}
}

func TestEmptyInput(t *testing.T) {
	expectKinds(t, "", token.EOF)
}

func TestIndentDedent(t *testing.T) {
	expectKinds(t, "if x:\n    pass\n",
		token.Name, token.Name, token.Op, token.Newline,
		token.Indent, token.Name, token.Newline,
		token.Dedent, token.EOF)
}

func TestNestedDedents(t *testing.T) {
	src := "if a:\n    if b:\n        pass\nx = 1\n"
	toks, bag := tokenize(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", bagSummary(bag))
	}
	dedents := 0
	for _, tok := range toks {
		if tok.Kind == token.Dedent {
			dedents++
		}
	}
	if dedents != 2 {
		t.Errorf("dedent count = %d, want 2", dedents)
	}
}

func TestBlankLineEmitsSingleNL(t *testing.T) {
	expectKinds(t, "a\n\nb\n",
		token.Name, token.Newline,
		token.NL,
		token.Name, token.Newline, token.EOF)
}

func TestCommentOnlyLine(t *testing.T) {
	toks := expectKinds(t, "# hi\nx\n",
		token.Comment, token.NL, token.Name, token.Newline, token.EOF)
	if toks[0].Val != "# hi" {
		t.Errorf("comment val = %q, want %q", toks[0].Val, "# hi")
	}
	if !toks[0].IsFullLineComment() {
		t.Error("comment-only line not recognized as full-line")
	}
}

func TestIndentedCommentDoesNotTouchIndentStack(t *testing.T) {
	src := "if x:\n    pass\n        # deep comment\ny = 1\n"
	toks, bag := tokenize(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", bagSummary(bag))
	}
	// Exactly one Indent/Dedent pair despite the deeper comment line.
	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	if indents != 1 || dedents != 1 {
		t.Errorf("indents/dedents = %d/%d, want 1/1", indents, dedents)
	}
}

func TestTrailingComment(t *testing.T) {
	toks := expectKinds(t, "x = 1  # note\n",
		token.Name, token.Op, token.Number, token.Comment, token.Newline, token.EOF)
	if toks[3].IsFullLineComment() {
		t.Error("trailing comment misclassified as full-line")
	}
}

func TestBracketContinuation(t *testing.T) {
	toks := expectKinds(t, "f(a,\n  b)\n",
		token.Name, token.Op, token.Name, token.Op,
		token.NL,
		token.Name, token.Op, token.Newline, token.EOF)
	if toks[4].Kind != token.NL {
		t.Error("newline inside brackets must be non-logical")
	}
}

func TestBackslashContinuation(t *testing.T) {
	expectKinds(t, "x = 1 + \\\n    2\n",
		token.Name, token.Op, token.Number, token.Op, token.Number,
		token.Newline, token.EOF)
}

func TestTripleQuotedString(t *testing.T) {
	toks := expectKinds(t, "s = \"\"\"a\nb\"\"\"\n",
		token.Name, token.Op, token.String, token.Newline, token.EOF)
	str := toks[2]
	if str.Val != "\"\"\"a\nb\"\"\"" {
		t.Errorf("spelling = %q", str.Val)
	}
	if str.Start.Row != 1 || str.End.Row != 2 {
		t.Errorf("rows = %d-%d, want 1-2", str.Start.Row, str.End.Row)
	}
	if str.BucketRow() != 2 {
		t.Errorf("BucketRow = %d, want ending row 2", str.BucketRow())
	}
}

func TestStringSpellings(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`s = 'a"b'` + "\n", `'a"b'`},
		{`s = "it's"` + "\n", `"it's"`},
		{`s = 'a\'b'` + "\n", `'a\'b'`},
		{`s = r'a\nb'` + "\n", `r'a\nb'`},
		{`s = b"xy"` + "\n", `b"xy"`},
		{`s = ''` + "\n", `''`},
	}
	for _, tt := range tests {
		toks, bag := tokenize(t, tt.input)
		if bag.HasErrors() {
			t.Errorf("input %q: %s", tt.input, bagSummary(bag))
			continue
		}
		var got string
		for _, tok := range toks {
			if tok.Kind == token.String {
				got = tok.Val
			}
		}
		if got != tt.want {
			t.Errorf("input %q: spelling = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNumberSpellings(t *testing.T) {
	toks := expectKinds(t, "a = 0x1f + 0b10 + 1_000 + 1.5e-3 + 2j\n",
		token.Name, token.Op,
		token.Number, token.Op, token.Number, token.Op, token.Number,
		token.Op, token.Number, token.Op, token.Number,
		token.Newline, token.EOF)
	want := []string{"0x1f", "0b10", "1_000", "1.5e-3", "2j"}
	got := make([]string, 0, len(want))
	for _, tok := range toks {
		if tok.Kind == token.Number {
			got = append(got, tok.Val)
		}
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("number %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestOperatorsMaximalMunch(t *testing.T) {
	toks := expectKinds(t, "a **= b // c >> d\n",
		token.Name, token.Op, token.Name, token.Op, token.Name,
		token.Op, token.Name, token.Newline, token.EOF)
	want := []string{"**=", "//", ">>"}
	got := make([]string, 0, 3)
	for _, tok := range toks {
		if tok.Kind == token.Op && tok.Val != "=" {
			got = append(got, tok.Val)
		}
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestArrowAndWalrus(t *testing.T) {
	toks, bag := tokenize(t, "def f() -> int:\n    pass\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", bagSummary(bag))
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == token.Op && tok.Val == "->" {
			found = true
		}
	}
	if !found {
		t.Error("'->' not tokenized as one operator")
	}
}

func TestBadDedentReported(t *testing.T) {
	_, bag := tokenize(t, "if x:\n    pass\n  y\n")
	if !hasCode(bag, diag.LexBadIndent) {
		t.Errorf("want LexBadIndent, got: %s", bagSummary(bag))
	}
}

func TestUnterminatedString(t *testing.T) {
	_, bag := tokenize(t, "s = 'abc\n")
	if !hasCode(bag, diag.LexUnterminatedString) {
		t.Errorf("want LexUnterminatedString, got: %s", bagSummary(bag))
	}
}

func TestUnterminatedTripleString(t *testing.T) {
	toks, bag := tokenize(t, "s = '''abc\ndef\n")
	if !hasCode(bag, diag.LexUnterminatedString) {
		t.Errorf("want LexUnterminatedString, got: %s", bagSummary(bag))
	}
	if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
		t.Error("stream must still end in EOF")
	}
}

func TestUnclosedBracketReported(t *testing.T) {
	_, bag := tokenize(t, "f(a, b\n")
	if !hasCode(bag, diag.LexUnclosedBracket) {
		t.Errorf("want LexUnclosedBracket, got: %s", bagSummary(bag))
	}
}

func TestBasePrefixWithoutDigits(t *testing.T) {
	_, bag := tokenize(t, "x = 0x\n")
	if !hasCode(bag, diag.LexBadNumber) {
		t.Errorf("want LexBadNumber, got: %s", bagSummary(bag))
	}
}

func TestUnknownCharReported(t *testing.T) {
	_, bag := tokenize(t, "x = 1 $ 2\n")
	if !hasCode(bag, diag.LexUnknownChar) {
		t.Errorf("want LexUnknownChar, got: %s", bagSummary(bag))
	}
}

func TestRawCarriesFullLine(t *testing.T) {
	toks, _ := tokenize(t, "x = 1\n")
	for _, tok := range toks[:4] {
		if tok.Raw != "x = 1\n" {
			t.Errorf("%v raw = %q, want full line", tok.Kind, tok.Raw)
		}
	}
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
