package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"py2coffee/internal/diag"
	"py2coffee/internal/source"
)

// Pretty renders diagnostics for a terminal. For each item it prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line and a caret underline, then notes in the
// same shape. The bag is expected to be sorted.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	printed := 0
	for _, d := range bag.Items() {
		if opts.Max > 0 && printed >= opts.Max {
			fmt.Fprintf(w, "... and %d more\n", bag.Len()-printed)
			return
		}
		printDiagnostic(w, d, fs, opts)
		printed++
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s: %s %s: %s\n", location(fs, d.Primary, opts.PathMode), sev, d.Code.ID(), d.Message)
	printContext(w, fs, d.Primary, opts)
	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		fmt.Fprintf(w, "%s: note: %s\n", location(fs, n.Span, opts.PathMode), n.Msg)
		printContext(w, fs, n.Span, opts)
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := strings.ToUpper(sev.String())
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

func location(fs *source.FileSet, sp source.Span, mode PathMode) string {
	if fs == nil {
		return fmt.Sprintf("<unknown>:%d", sp.Start)
	}
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", displayPath(f.Path, fs.BaseDir(), mode), start.Line, start.Col)
}

func displayPath(path, baseDir string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeRelative, PathModeAuto:
		if rel, err := filepath.Rel(baseDir, path); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	case PathModeBasename:
		return filepath.Base(path)
	}
	return path
}

// printContext shows the source line the span starts on with a caret
// underline covering the span's extent on that line.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil || sp == (source.Span{}) {
		return
	}
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "    %s\n", line)

	caretStart := int(start.Col) - 1
	caretLen := 1
	if end.Line == start.Line && end.Col > start.Col {
		caretLen = int(end.Col - start.Col)
	}
	if caretStart < 0 || caretStart > len(line) {
		return
	}
	marker := "^" + strings.Repeat("~", caretLen-1)
	if opts.Color {
		marker = color.New(color.FgGreen, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", caretStart), marker)
}
