package main

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"py2coffee/internal/diagfmt"
	"py2coffee/internal/driver"
	"py2coffee/internal/ui"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] file.py|dir|glob ...",
	Short: "Translate Python files to CoffeeScript",
	Long: `Translate runs the full pipeline over each input: tokenize, parse,
re-synchronize comments and string spellings against the token stream, and
emit a .coffee file next to the input (or into --output-dir)`,
	Args: cobra.MinimumNArgs(0),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().Bool("strict", false, "fail on constructs without a translation instead of degrading")
	translateCmd.Flags().Bool("overwrite", false, "replace existing .coffee files")
	translateCmd.Flags().String("output-dir", "", "write generated files into this directory")
	translateCmd.Flags().Bool("no-header", false, "omit the generation banner")
	translateCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	translateCmd.Flags().Bool("no-cache", false, "bypass the on-disk output cache")
	translateCmd.Flags().Bool("progress", false, "show interactive progress (TTY only)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	opts, files, err := buildTranslateOptions(cmd, args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no .py files to translate")
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	showProgress, _ := cmd.Flags().GetBool("progress")

	var wg sync.WaitGroup
	if showProgress && isTerminal(os.Stdout) {
		events := make(chan driver.Event, 64)
		opts.Events = events
		model := ui.NewProgressModel("translating", files, events)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = tea.NewProgram(model).Run()
			// The program may quit early (ctrl+c); keep consuming so the
			// batch's event sends never block on a full buffer.
			drainEvents(events)
		}()
		defer func() {
			close(events)
			wg.Wait()
		}()
	}

	fileSet, results, err := driver.TranslatePaths(cmd.Context(), files, opts)
	if err != nil {
		return err
	}

	failed := 0
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}
	for _, res := range results {
		if res.Bag != nil && res.Bag.Len() > 0 {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, fileSet, prettyOpts)
		}
		switch {
		case res.Err != nil || (res.Bag != nil && res.Bag.HasErrors()):
			failed++
		case !quiet:
			status := "wrote"
			switch {
			case res.Cached && res.Wrote:
				status = "cached -> wrote"
			case !res.Wrote:
				status = "skipped"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s\n", res.Path, status, res.OutPath)
		}
		if showTimings && res.Timing.TotalMS > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f ms total\n", res.Path, res.Timing.TotalMS)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// drainEvents consumes progress events until the channel closes.
func drainEvents(events <-chan driver.Event) {
	for range events {
	}
}

// buildTranslateOptions merges manifest defaults with flags; flags win.
func buildTranslateOptions(cmd *cobra.Command, args []string) (driver.Options, []string, error) {
	var opts driver.Options
	opts.Header = true

	manifest, found, err := loadManifest("")
	if err != nil {
		return opts, nil, err
	}
	if found {
		cfg := manifest.Config.Translate
		opts.Strict = cfg.Strict
		opts.Overwrite = cfg.Overwrite
		opts.OutputDir = cfg.OutputDir
		if cfg.Header != nil {
			opts.Header = *cfg.Header
		}
		if len(args) == 0 {
			args = cfg.Files
		}
	}

	if cmd.Flags().Changed("strict") {
		opts.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("overwrite") {
		opts.Overwrite, _ = cmd.Flags().GetBool("overwrite")
	}
	if cmd.Flags().Changed("output-dir") {
		opts.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	if noHeader, _ := cmd.Flags().GetBool("no-header"); noHeader {
		opts.Header = false
	}
	opts.Jobs, _ = cmd.Flags().GetInt("jobs")
	opts.MaxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	if noCache, _ := cmd.Flags().GetBool("no-cache"); !noCache {
		if cache, err := driver.OpenDiskCache("py2coffee"); err == nil {
			opts.Cache = cache
		}
	}

	files, err := driver.CollectFiles(args)
	return opts, files, err
}
