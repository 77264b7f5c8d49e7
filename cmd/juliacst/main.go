// Command juliacst tokenizes, parses, and inspects Julia-like source files
// through the lossless concrete-syntax-tree pipeline in internal/cst and
// internal/parser.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"surge/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "juliacst",
	Short: "Lossless tokenizer and parser toolchain for Julia-like source",
	Long:  "juliacst tokenizes, parses, and inspects Julia-like source files without losing a single byte of the original text.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagnoseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "accepted but has no effect on output")
	rootCmd.PersistentFlags().String("langver", "", "grammar version to accept (default: latest known)")
	rootCmd.PersistentFlags().String("langver-config", "", "path to a TOML file overriding grammar features")
	rootCmd.PersistentFlags().Bool("no-cache", false, "bypass the on-disk parse cache")
	rootCmd.PersistentFlags().String("cache-dir", "", "parse cache directory (default: OS cache dir)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
