package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"surge/internal/driver"
	"surge/internal/source"
	"surge/internal/ui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.jl>",
	Short: "Interactively browse a parsed file's concrete syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	features, err := resolveFeatures(cmd)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	res, err := driver.Parse(fs, path, features)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if res.Bag.HasErrors() {
		if err := printDiagnostics(cmd, fs, res.Bag); err != nil {
			return err
		}
	}

	model := ui.NewInspectModel(fs.Get(res.FileID), res.Root)
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
