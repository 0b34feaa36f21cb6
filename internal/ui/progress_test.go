package ui

import (
	"testing"

	"py2coffee/internal/driver"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		stage  driver.Stage
		status driver.Status
		want   string
	}{
		{driver.StageQueued, driver.StatusQueued, "queued"},
		{driver.StageParse, driver.StatusWorking, "parsing"},
		{driver.StageEmit, driver.StatusWorking, "emitting"},
		{driver.StageWrite, driver.StatusDone, "done"},
		{driver.StageWrite, driver.StatusError, "error"},
		{driver.StageWrite, driver.StatusSkipped, "skipped"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.stage, tt.status); got != tt.want {
			t.Errorf("statusLabel(%v, %v) = %q, want %q", tt.stage, tt.status, got, tt.want)
		}
	}
}

func TestProgressFromStageIsMonotonic(t *testing.T) {
	stages := []driver.Stage{
		driver.StageQueued, driver.StageTokenize, driver.StageParse,
		driver.StageSync, driver.StageEmit, driver.StageWrite,
	}
	prev := -1.0
	for _, st := range stages {
		p := progressFromStage(st)
		if p <= prev {
			t.Errorf("progress for %v = %f, not increasing past %f", st, p, prev)
		}
		prev = p
	}
}

func TestApplyEventUpdatesItem(t *testing.T) {
	events := make(chan driver.Event)
	model := NewProgressModel("translating", []string{"a.py", "b.py"}, events).(*progressModel)

	model.applyEvent(driver.Event{File: "b.py", Stage: driver.StageParse, Status: driver.StatusWorking})
	if model.items[1].status != "parsing" {
		t.Errorf("status = %q, want parsing", model.items[1].status)
	}
	if model.items[0].status != "queued" {
		t.Errorf("untouched item changed: %q", model.items[0].status)
	}

	// Events for unknown files are ignored.
	model.applyEvent(driver.Event{File: "zzz.py", Stage: driver.StageWrite, Status: driver.StatusDone})
	for _, item := range model.items {
		if item.path == "zzz.py" {
			t.Error("unknown file added to the list")
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.py", 20, "short.py"},
		{"a/very/long/path/name.py", 10, "a/very/..."},
		{"abcdef", 3, "abc"},
		{"x", 0, "x"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
