package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"py2coffee/internal/diag"
	"py2coffee/internal/source"
)

// CollectFiles expands the given arguments into a sorted list of .py
// files: directories are walked recursively, glob patterns expanded, and
// plain paths passed through.
func CollectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		switch {
		case isDir(arg):
			err := filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(path, ".py") {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		case strings.ContainsAny(arg, "*?["):
			matches, err := filepath.Glob(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, matches...)
		default:
			files = append(files, arg)
		}
	}
	sort.Strings(files)
	return dedupStrings(files), nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func dedupStrings(in []string) []string {
	out := in[:0]
	for i, s := range in {
		if i == 0 || s != in[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// TranslatePaths translates a batch of files in parallel. Result order
// follows the input order; each file carries its own diagnostic bag.
func TranslatePaths(ctx context.Context, paths []string, opts Options) (*source.FileSet, []FileResult, error) {
	opts = opts.withDefaults()
	if err := checkOutputDir(opts.OutputDir); err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(paths))
	loadErrors := make(map[string]error, len(paths))
	for _, path := range paths {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(paths) && len(paths) > 0 {
		jobs = len(paths)
	}

	results := make([]FileResult, len(paths))
	for _, path := range paths {
		opts.notify(path, StageQueued, StatusQueued)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(opts.MaxDiagnostics)
				diag.ReportError(diag.BagReporter{Bag: bag}, diag.IOLoadFileError, source.Span{},
					"failed to load file: "+loadErr.Error())
				results[i] = FileResult{Path: path, Bag: bag, Err: loadErr}
				opts.notify(path, StageTokenize, StatusError)
				return nil
			}

			res := TranslateFile(fileSet, fileIDs[path], opts)
			results[i] = res
			switch {
			case res.Err != nil, res.Bag.HasErrors():
				opts.notify(path, StageWrite, StatusError)
			default:
				opts.notify(path, StageWrite, StatusDone)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
