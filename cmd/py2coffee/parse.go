package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"py2coffee/internal/diagfmt"
	"py2coffee/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.py",
	Short: "Dump the syntax tree of a Python source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s has syntax errors", args[0])
	}
	return diagfmt.FormatTreePretty(os.Stdout, result.Tree)
}
