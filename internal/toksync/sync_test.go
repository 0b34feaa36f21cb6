package toksync_test

import (
	"strings"
	"testing"

	"py2coffee/internal/diag"
	"py2coffee/internal/lexer"
	"py2coffee/internal/pyast"
	"py2coffee/internal/source"
	"py2coffee/internal/token"
	"py2coffee/internal/toksync"
)

func newSync(t *testing.T, src string) (*toksync.Sync, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte(src))
	sf := fs.Get(id)
	bag := diag.NewBag(20)
	rep := diag.BagReporter{Bag: bag}
	toks := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	s, err := toksync.New(sf, toks, rep)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, bag
}

func nodeAt(line uint32) pyast.Node {
	return &pyast.Pass{Base: pyast.Base{LineNo: line}}
}

func TestLeadingLinesRecoversCommentsAndBlanks(t *testing.T) {
	src := "# header\n\nx = 1\n"
	s, _ := newSync(t, src)

	got := s.LeadingLines(nodeAt(3))
	want := []string{"# header\n", "\n"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLeadingLinesKeepsCommentIndentation(t *testing.T) {
	src := "def f():\n    # inner\n    return 1\n"
	s, _ := newSync(t, src)

	got := s.LeadingString(nodeAt(3))
	if got != "    # inner\n" {
		t.Errorf("got %q, want indented comment", got)
	}
}

func TestLeadingCursorIsMonotonic(t *testing.T) {
	src := "# one\na = 1\n# two\nb = 2\n"
	s, _ := newSync(t, src)

	if got := s.LeadingString(nodeAt(2)); got != "# one\n" {
		t.Fatalf("first call = %q, want %q", got, "# one\n")
	}
	// A replay of an earlier line yields nothing new.
	if got := s.LeadingString(nodeAt(2)); got != "" {
		t.Errorf("replayed call = %q, want empty", got)
	}
	if got := s.LeadingString(nodeAt(4)); got != "# two\n" {
		t.Errorf("second call = %q, want %q", got, "# two\n")
	}
}

func TestLeadingLinesNilAndLineZero(t *testing.T) {
	s, _ := newSync(t, "# c\nx = 1\n")
	if got := s.LeadingLines(nil); got != nil {
		t.Errorf("nil node yields %q, want nothing", got)
	}
	if got := s.LeadingLines(nodeAt(0)); got != nil {
		t.Errorf("line-zero node yields %q, want nothing", got)
	}
}

func TestInlineCommentNotRecovered(t *testing.T) {
	src := "a = 1  # trailing\nb = 2\n"
	s, _ := newSync(t, src)
	if got := s.LeadingString(nodeAt(2)); got != "" {
		t.Errorf("trailing comment leaked into leading lines: %q", got)
	}
}

func TestRecoverStringSpelling(t *testing.T) {
	src := "s = 'a\"b'\nt = \"two\"\n"
	s, _ := newSync(t, src)

	str1 := &pyast.Str{Base: pyast.Base{LineNo: 1}, Value: "a\"b"}
	if got := s.RecoverString(str1); got != `'a"b'` {
		t.Errorf("line 1 spelling = %q, want %q", got, `'a"b'`)
	}
	str2 := &pyast.Str{Base: pyast.Base{LineNo: 2}, Value: "two"}
	if got := s.RecoverString(str2); got != `"two"` {
		t.Errorf("line 2 spelling = %q, want %q", got, `"two"`)
	}
}

func TestRecoverStringQueueOrder(t *testing.T) {
	src := "d = {'a': 'b'}\n"
	s, _ := newSync(t, src)

	n := &pyast.Str{Base: pyast.Base{LineNo: 1}}
	if got := s.RecoverString(n); got != "'a'" {
		t.Errorf("first pop = %q, want 'a'", got)
	}
	if got := s.RecoverString(n); got != "'b'" {
		t.Errorf("second pop = %q, want 'b'", got)
	}
}

func TestRecoverStringUnderflowFallsBack(t *testing.T) {
	src := "s = 'one'\n"
	s, bag := newSync(t, src)

	n := &pyast.Str{Base: pyast.Base{LineNo: 1}, Value: "one"}
	s.RecoverString(n)
	got := s.RecoverString(n)
	if got != "one" {
		t.Errorf("underflow fallback = %q, want parsed value", got)
	}
	if !hasCode(bag, diag.SyncStringUnderflow) {
		t.Error("underflow did not report SyncStringUnderflow")
	}
	if bag.HasErrors() {
		t.Error("underflow must degrade, not fail")
	}
}

func TestMultiLineStringBucketsToEndingRow(t *testing.T) {
	src := "s = '''a\nb'''\nx = 1\n"
	s, _ := newSync(t, src)

	// The literal is queued on its ending line, not its starting line.
	n := &pyast.Str{Base: pyast.Base{LineNo: 2}}
	if got := s.RecoverString(n); got != "'''a\nb'''" {
		t.Errorf("spelling = %q", got)
	}
}

func TestCommentCollisionFatal(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("# a\n"))
	sf := fs.Get(id)

	toks := []token.Token{
		{Kind: token.Comment, Val: "# a", Raw: "# a\n", Start: token.Pos{Row: 1}, End: token.Pos{Row: 1, Col: 3}},
		{Kind: token.Comment, Val: "# b", Raw: "# b\n", Start: token.Pos{Row: 1}, End: token.Pos{Row: 1, Col: 3}},
		{Kind: token.EOF, Start: token.Pos{Row: 2}, End: token.Pos{Row: 2}},
	}
	bag := diag.NewBag(10)
	_, err := toksync.New(sf, toks, diag.BagReporter{Bag: bag})
	if err == nil {
		t.Fatal("two full-line comments on one line must fail")
	}
	if !hasCode(bag, diag.SyncCommentCollision) {
		t.Error("collision did not report SyncCommentCollision")
	}
}

func TestRawLineSpan(t *testing.T) {
	src := "x = 1 + \\\n    2\ny = 3\n"
	s, _ := newSync(t, src)

	plain := s.RawLineSpan(nodeAt(3), false)
	if plain != "y = 3" {
		t.Errorf("plain = %q, want y = 3", plain)
	}
	joined := s.RawLineSpan(nodeAt(1), true)
	if !strings.HasPrefix(joined, "x = 1 + ") || !strings.HasSuffix(joined, "    2") {
		t.Errorf("continuation join = %q", joined)
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
