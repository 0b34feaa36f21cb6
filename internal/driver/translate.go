package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"py2coffee/internal/diag"
	"py2coffee/internal/emit"
	"py2coffee/internal/lexer"
	"py2coffee/internal/observ"
	"py2coffee/internal/parser"
	"py2coffee/internal/source"
	"py2coffee/internal/toksync"
)

// headerTimeLayout matches the banner written at the top of generated
// files.
const headerTimeLayout = "Mon 02 Jan 2006 at 15:04:05"

// Options configures a translation run.
type Options struct {
	// Strict aborts a file on an unknown operator instead of degrading.
	Strict bool
	// Overwrite allows replacing an existing output file.
	Overwrite bool
	// OutputDir redirects generated files; empty writes next to the input.
	OutputDir string
	// Header prepends a generation banner with a timestamp.
	Header bool
	// Now supplies the banner timestamp; nil means time.Now.
	Now func() time.Time
	// MaxDiagnostics caps the per-file diagnostic bag.
	MaxDiagnostics int
	// Jobs limits batch parallelism; 0 means GOMAXPROCS.
	Jobs int
	// Cache short-circuits unchanged files when set.
	Cache *DiskCache
	// Events receives per-stage progress when set.
	Events chan<- Event
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// FileResult is the outcome of translating one file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	Output  string // generated text, banner included
	OutPath string
	Bag     *diag.Bag
	Timing  observ.Report
	Cached  bool
	Wrote   bool
	Err     error
}

// TranslateFile runs the whole pipeline for one already-loaded file:
// tokenize, parse, token-sync, emit, then write the output next to the
// input (or into OutputDir).
func TranslateFile(fileSet *source.FileSet, fileID source.FileID, opts Options) FileResult {
	opts = opts.withDefaults()
	sf := fileSet.Get(fileID)
	res := FileResult{
		Path:   sf.Path,
		FileID: fileID,
		Bag:    diag.NewBag(opts.MaxDiagnostics),
	}

	// Reject a bad destination before any work happens on the file.
	if err := checkOutputDir(opts.OutputDir); err != nil {
		diag.ReportError(diag.BagReporter{Bag: res.Bag}, diag.IOOutputDirMissing, source.Span{},
			"output directory does not exist: "+opts.OutputDir)
		res.Err = err
		return res
	}

	timer := observ.NewTimer()
	res.Output, res.Cached, res.Err = translateSource(sf, res.Bag, opts, timer)
	if res.Err == nil {
		res.OutPath, res.Wrote, res.Err = writeOutput(sf.Path, res.Output, res.Bag, opts, timer)
	}
	res.Timing = timer.Report()
	return res
}

// translateSource produces the generated text for one file, consulting the
// cache first. The cache holds the body only; the banner is stamped per run
// so a hit never replays a stale timestamp.
func translateSource(sf *source.File, bag *diag.Bag, opts Options, timer *observ.Timer) (out string, cached bool, err error) {
	if opts.Cache != nil {
		var payload DiskPayload
		hit, cacheErr := opts.Cache.Get(cacheKey(sf, opts), &payload)
		if cacheErr == nil && hit {
			return withHeader(payload.Output, opts), true, nil
		}
	}

	rep := diag.BagReporter{Bag: bag}

	opts.notify(sf.Path, StageTokenize, StatusWorking)
	idx := timer.Begin("tokenize")
	toks := lexer.Tokenize(sf, lexer.Options{Reporter: rep})
	timer.End(idx, fmt.Sprintf("%d tokens", len(toks)))

	opts.notify(sf.Path, StageParse, StatusWorking)
	idx = timer.Begin("parse")
	tree := parser.New(sf, toks, rep).ParseModule()
	timer.End(idx, "")
	if bag.HasErrors() {
		return "", false, fmt.Errorf("driver: %s has syntax errors", sf.Path)
	}

	opts.notify(sf.Path, StageSync, StatusWorking)
	idx = timer.Begin("sync")
	sync, err := toksync.New(sf, toks, rep)
	timer.End(idx, "")
	if err != nil {
		return "", false, err
	}

	opts.notify(sf.Path, StageEmit, StatusWorking)
	idx = timer.Begin("emit")
	body, err := emit.Emit(tree, sync, emit.Options{Strict: opts.Strict, Reporter: rep})
	timer.End(idx, "")
	if err != nil {
		return "", false, err
	}

	// A file that produced diagnostics is never cached: a later hit would
	// otherwise silence them.
	if opts.Cache != nil && bag.Len() == 0 {
		// best effort; a failed cache write only costs the next run
		_ = opts.Cache.Put(cacheKey(sf, opts), &DiskPayload{
			Schema:     diskCacheSchemaVersion,
			SourceHash: sf.Hash,
			Output:     body,
		})
	}
	return withHeader(body, opts), false, nil
}

func withHeader(body string, opts Options) string {
	if !opts.Header {
		return body
	}
	return "# py2coffee: " + opts.Now().Format(headerTimeLayout) + "\n" + body
}

// OutputPath maps an input path to its generated counterpart: the .py
// suffix becomes .coffee, optionally redirected into outputDir.
func OutputPath(path, outputDir string) string {
	out := strings.TrimSuffix(path, ".py") + ".coffee"
	if outputDir != "" {
		out = filepath.Join(outputDir, filepath.Base(out))
	}
	return out
}

// checkOutputDir validates the destination directory; batch and per-file
// entry points call it before starting the pipeline.
func checkOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		return fmt.Errorf("driver: output directory %s does not exist", dir)
	}
	return nil
}

func writeOutput(path, content string, bag *diag.Bag, opts Options, timer *observ.Timer) (outPath string, wrote bool, err error) {
	outPath = OutputPath(path, opts.OutputDir)

	if !opts.Overwrite {
		if _, statErr := os.Stat(outPath); statErr == nil {
			diag.ReportWarning(diag.BagReporter{Bag: bag}, diag.IOOutputExists, source.Span{},
				"output exists, not overwritten: "+outPath)
			opts.notify(path, StageWrite, StatusSkipped)
			return outPath, false, nil
		}
	}

	opts.notify(path, StageWrite, StatusWorking)
	idx := timer.Begin("write")
	err = os.WriteFile(outPath, []byte(content), 0o644)
	timer.End(idx, outPath)
	if err != nil {
		diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOWriteFileError, source.Span{},
			"failed to write output: "+err.Error())
		return outPath, false, err
	}
	return outPath, true, nil
}
