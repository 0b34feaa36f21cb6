package diag_test

import (
	"testing"

	"py2coffee/internal/diag"
	"py2coffee/internal/source"
)

func TestCodeID(t *testing.T) {
	tests := []struct {
		code diag.Code
		want string
	}{
		{diag.LexUnknownChar, "LEX1001"},
		{diag.SynExpectColon, "SYN2003"},
		{diag.SyncStringUnderflow, "TSY3002"},
		{diag.EmitDictMismatch, "EMT4003"},
		{diag.IOWriteFileError, "IO5001"},
		{diag.UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCodeTitleUnknownFallsBack(t *testing.T) {
	if got := diag.Code(9999).Title(); got != "Unknown error" {
		t.Errorf("Title = %q", got)
	}
}

func TestBagCapacity(t *testing.T) {
	bag := diag.NewBag(2)
	d := diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexInfo}
	if !bag.Add(d) || !bag.Add(d) {
		t.Fatal("adds under capacity must succeed")
	}
	if bag.Add(d) {
		t.Error("add past capacity must report a drop")
	}
	if bag.Len() != 2 {
		t.Errorf("len = %d, want 2", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{Severity: diag.SevInfo, Code: diag.SynInfo})
	if bag.HasWarnings() || bag.HasErrors() {
		t.Error("info-only bag reports warnings or errors")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.SyncStringUnderflow})
	if !bag.HasWarnings() || bag.HasErrors() {
		t.Error("warning bag misreported")
	}
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken})
	if !bag.HasErrors() {
		t.Error("error not detected")
	}
}

func TestBagSortOrdersByPosition(t *testing.T) {
	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Primary:  source.Span{File: 1, Start: 10, End: 11},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexUnknownChar,
		Primary:  source.Span{File: 1, Start: 2, End: 3},
	})
	bag.Sort()
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("first after sort = %v", bag.Items()[0].Code)
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(4)
	d := diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Primary:  source.Span{File: 1, Start: 2, End: 3},
	}
	bag.Add(d)
	bag.Add(d)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Primary:  source.Span{File: 1, Start: 5, End: 6},
	})
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("len after dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrowsCapacity(t *testing.T) {
	a := diag.NewBag(1)
	a.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken})
	b := diag.NewBag(1)
	b.Add(diag.Diagnostic{Severity: diag.SevWarning, Code: diag.LexInfo})

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("len after merge = %d, want 2", a.Len())
	}
	if a.Cap() < 2 {
		t.Errorf("cap after merge = %d, want >= 2", a.Cap())
	}
}
