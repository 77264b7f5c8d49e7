package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/diag"
	"surge/internal/diagfmt"
	"surge/internal/driver"
	"surge/internal/source"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [flags] <file.jl|directory>",
	Short: "Parse and report every diagnostic without printing the tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagnoseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	diagnoseCmd.Flags().Int("jobs", 0, "max parallel workers for directory input (0=auto)")
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	features, err := resolveFeatures(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	fs := source.NewFileSet()

	var errored bool

	if !st.IsDir() {
		res, err := driver.Parse(fs, path, features)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if err := renderDiagnostics(cmd, format, fs, res.Bag); err != nil {
			return err
		}
		errored = res.Bag.HasErrors()
	} else {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return err
		}
		results, err := driver.ParseDir(cmd.Context(), fs, path, features, jobs)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		for _, r := range results {
			if err := renderDiagnostics(cmd, format, fs, r.Bag); err != nil {
				return err
			}
			if r.Bag.HasErrors() {
				errored = true
			}
		}
	}

	if errored {
		os.Exit(1)
	}
	return nil
}

func renderDiagnostics(cmd *cobra.Command, format string, fs *source.FileSet, bag *diag.Bag) error {
	switch format {
	case "pretty":
		useColor, err := resolveColor(cmd, os.Stdout)
		if err != nil {
			return err
		}
		opts := diagfmt.DefaultPrettyOpts()
		opts.Color = useColor
		return diagfmt.Pretty(os.Stdout, fs, bag, opts)
	case "json":
		return diagfmt.JSON(os.Stdout, fs, bag, diagfmt.DefaultJSONOpts())
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}
