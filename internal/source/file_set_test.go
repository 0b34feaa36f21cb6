package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"py2coffee/internal/source"
)

func TestAddVirtual(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("x = 1\ny = 2\n"))
	f := fs.Get(id)

	if f.Path != "test.py" {
		t.Errorf("Path = %q, want test.py", f.Path)
	}
	if f.Flags&source.FileVirtual == 0 {
		t.Error("virtual flag not set")
	}
	if got, ok := fs.GetByPath("test.py"); !ok || got.ID != id {
		t.Error("GetByPath did not find the virtual file")
	}
}

func TestGetLine(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestNumLines(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"x", 1},
		{"x\n", 1},
		{"x\ny", 2},
		{"x\ny\n", 2},
	}
	fs := source.NewFileSet()
	for _, tt := range tests {
		id := fs.AddVirtual("f"+tt.content, []byte(tt.content))
		if got := fs.Get(id).NumLines(); got != tt.want {
			t.Errorf("NumLines(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.py", []byte("ab\ncd\n"))

	start, end := fs.Resolve(source.Span{File: id, Start: 3, End: 5})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 3 {
		t.Errorf("end = %d:%d, want 2:3", end.Line, end.Col)
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.py")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x = 1\r\ny = 2\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x = 1\ny = 2\n" {
		t.Errorf("content not normalized: %q", f.Content)
	}
	if f.Flags&source.FileHadBOM == 0 {
		t.Error("BOM flag not set")
	}
	if f.Flags&source.FileNormalizedCRLF == 0 {
		t.Error("CRLF flag not set")
	}
}

func TestSpanLenAndEmpty(t *testing.T) {
	sp := source.Span{Start: 2, End: 5}
	if sp.Len() != 3 {
		t.Errorf("Len = %d, want 3", sp.Len())
	}
	if sp.Empty() {
		t.Error("non-empty span reported empty")
	}
	if !(source.Span{Start: 4, End: 4}).Empty() {
		t.Error("zero-length span not reported empty")
	}
}
