package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"surge/internal/langver"
	"surge/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show juliacst build and grammar version info",
	RunE:  runVersion,
}

type versionPayload struct {
	Tool           string `json:"tool"`
	Version        string `json:"version"`
	GitCommit      string `json:"git_commit,omitempty"`
	BuildDate      string `json:"build_date,omitempty"`
	GrammarVersion string `json:"grammar_version"`
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	payload := versionPayload{
		Tool:           "juliacst",
		Version:        valueOrUnknown(strings.TrimSpace(version.Version)),
		GitCommit:      strings.TrimSpace(version.GitCommit),
		BuildDate:      strings.TrimSpace(version.BuildDate),
		GrammarVersion: langver.Latest(),
	}

	switch format {
	case "pretty":
		renderVersionPretty(cmd.OutOrStdout(), payload)
		return nil
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", format)
	}
}

func renderVersionPretty(w io.Writer, p versionPayload) {
	fmt.Fprintf(w, "juliacst %s (grammar %s)\n", p.Version, p.GrammarVersion)
	if p.GitCommit != "" {
		fmt.Fprintf(w, "commit: %s\n", p.GitCommit)
	}
	if p.BuildDate != "" {
		fmt.Fprintf(w, "built:  %s\n", p.BuildDate)
	}
}

func valueOrUnknown(s string) string {
	if s == "" {
		return "dev"
	}
	return s
}
