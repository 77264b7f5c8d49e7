package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/driver"
	"surge/internal/source"
	"surge/internal/token"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.jl|directory>",
	Short: "Tokenize a source file or every *.jl file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("jobs", 0, "max parallel workers for directory input (0=auto)")
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	cache, err := resolveCache(cmd)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	fs := source.NewFileSet()

	if !st.IsDir() {
		res, err := driver.Tokenize(fs, cache, path)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		if err := printDiagnostics(cmd, fs, res.Bag); err != nil {
			return err
		}
		return writeTokens(format, res.Tokens)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	results, err := driver.TokenizeDir(cmd.Context(), fs, cache, path, jobs)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	var allOK = true
	for _, r := range results {
		if err := printDiagnostics(cmd, fs, r.Bag); err != nil {
			return err
		}
		if r.Bag.HasErrors() {
			allOK = false
		}
		fmt.Printf("%s: %d tokens\n", r.Path, len(r.Tokens))
	}
	if !allOK {
		os.Exit(1)
	}
	return nil
}

func writeTokens(format string, toks []token.RawToken) error {
	switch format {
	case "pretty":
		for _, t := range toks {
			fmt.Printf("%-20s [%d, %d)\n", t.Kind.String(), t.Start, t.End)
		}
		return nil
	case "json":
		out := make([]tokenJSON, len(toks))
		for i, t := range toks {
			out[i] = tokenJSON{Kind: t.Kind.String(), Start: t.Start, End: t.End}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}
