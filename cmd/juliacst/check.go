package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/driver"
	"surge/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.jl|directory>",
	Short: "Parse and verify the lossless-CST structural invariants hold",
	Long:  "check parses a source file (or every *.jl file in a directory) and verifies the built tree covers every source byte exactly once, with monotonic, well-nested spans and no dangling tombstones.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory input (0=auto)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	features, err := resolveFeatures(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	fs := source.NewFileSet()
	var failed bool

	report := func(path string, res driver.DiagnoseResult) error {
		if err := printDiagnostics(cmd, fs, res.Bag); err != nil {
			return err
		}
		if len(res.Violations) == 0 {
			fmt.Printf("%s: ok\n", path)
			return nil
		}
		failed = true
		fmt.Printf("%s: %d invariant violation(s)\n", path, len(res.Violations))
		for _, v := range res.Violations {
			fmt.Printf("  %s\n", v)
		}
		return nil
	}

	if !st.IsDir() {
		res, err := driver.Diagnose(fs, path, features)
		if err != nil {
			return fmt.Errorf("checking failed: %w", err)
		}
		if err := report(path, res); err != nil {
			return err
		}
	} else {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return err
		}
		results, err := driver.DiagnoseDir(cmd.Context(), fs, path, features, jobs)
		if err != nil {
			return fmt.Errorf("checking failed: %w", err)
		}
		for _, r := range results {
			if err := report(r.Path, r); err != nil {
				return err
			}
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
