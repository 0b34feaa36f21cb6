package diagfmt_test

import (
	"strings"
	"testing"

	"py2coffee/internal/diag"
	"py2coffee/internal/diagfmt"
	"py2coffee/internal/source"
)

func testBag(fs *source.FileSet) (*diag.Bag, source.FileID) {
	id := fs.AddVirtual("test.py", []byte("x = $ 1\ny = 2\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unexpected character $",
		Primary:  source.Span{File: id, Start: 4, End: 5},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SyncStringUnderflow,
		Message:  "no string token left",
		Primary:  source.Span{File: id, Start: 8, End: 9},
	})
	return bag, id
}

func TestPrettyShape(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	out := b.String()

	if !strings.Contains(out, "test.py:1:5: ERROR LEX1001: unexpected character $") {
		t.Errorf("missing error line in:\n%s", out)
	}
	if !strings.Contains(out, "test.py:2:1: WARNING TSY3002: no string token left") {
		t.Errorf("missing warning line in:\n%s", out)
	}
	// Source context with a caret under the offending column.
	if !strings.Contains(out, "    x = $ 1\n        ^\n") {
		t.Errorf("missing caret context in:\n%s", out)
	}
}

func TestPrettyMaxCap(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{Max: 1, PathMode: diagfmt.PathModeBasename})
	out := b.String()

	if !strings.Contains(out, "... and 1 more") {
		t.Errorf("missing truncation notice in:\n%s", out)
	}
	if strings.Contains(out, "TSY3002") {
		t.Errorf("capped output still shows the second diagnostic:\n%s", out)
	}
}

func TestPrettySkipsEmptySpanContext(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.py", []byte("x = 1\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.IOWriteFileError,
		Message:  "failed to write output",
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	out := b.String()
	if strings.Contains(out, "^") {
		t.Errorf("spanless diagnostic must not print a caret:\n%s", out)
	}
	if !strings.Contains(out, "IO5001") {
		t.Errorf("missing code in:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("x = 1\n"))
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: id, Start: 0, End: 1},
	}.WithNote(source.Span{File: id, Start: 4, End: 5}, "statement starts here"))

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{ShowNotes: true, PathMode: diagfmt.PathModeBasename})
	if !strings.Contains(b.String(), "note: statement starts here") {
		t.Errorf("missing note in:\n%s", b.String())
	}

	b.Reset()
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{ShowNotes: false, PathMode: diagfmt.PathModeBasename})
	if strings.Contains(b.String(), "note:") {
		t.Errorf("notes shown despite ShowNotes=false:\n%s", b.String())
	}
}

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	bag, _ := testBag(fs)

	var b strings.Builder
	err := diagfmt.JSON(&b, bag, fs, diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         diagfmt.PathModeBasename,
	})
	if err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, want := range []string{
		`"count": 2`,
		`"code": "LEX1001"`,
		`"severity": "ERROR"`,
		`"file": "test.py"`,
		`"start_line": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
