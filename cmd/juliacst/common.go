package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"surge/internal/diag"
	"surge/internal/diagfmt"
	"surge/internal/langver"
	"surge/internal/parsecache"
	"surge/internal/source"
)

// resolveColor answers "auto|on|off" against whether out is a terminal.
func resolveColor(cmd *cobra.Command, out *os.File) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return isTerminal(out), nil
	}
}

// resolveFeatures applies --langver-config first (it may set a base version
// plus per-feature overrides), then --langver on top of that if given, so a
// version override next to a loaded config acts as a further override
// rather than being silently shadowed by it.
func resolveFeatures(cmd *cobra.Command) (langver.Set, error) {
	features := langver.Default()

	cfgPath, err := cmd.Root().PersistentFlags().GetString("langver-config")
	if err != nil {
		return 0, err
	}
	if cfgPath != "" {
		features, err = langver.Load(cfgPath)
		if err != nil {
			return 0, fmt.Errorf("failed to load langver config: %w", err)
		}
	}

	version, err := cmd.Root().PersistentFlags().GetString("langver")
	if err != nil {
		return 0, err
	}
	if version != "" {
		features = langver.ForVersion(version)
	}
	return features, nil
}

// resolveCache opens the parse cache unless --no-cache was given. A nil
// *parsecache.Cache is a valid, always-miss cache — every caller in this
// package treats it that way rather than branching on nil explicitly.
func resolveCache(cmd *cobra.Command) (*parsecache.Cache, error) {
	noCache, err := cmd.Root().PersistentFlags().GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if noCache {
		return nil, nil
	}
	dir, err := cmd.Root().PersistentFlags().GetString("cache-dir")
	if err != nil {
		return nil, err
	}
	if dir != "" {
		return parsecache.Open(dir)
	}
	return parsecache.OpenDefault("juliacst")
}

func printDiagnostics(cmd *cobra.Command, fs *source.FileSet, bag *diag.Bag) error {
	if bag.Len() == 0 {
		return nil
	}
	useColor, err := resolveColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	opts := diagfmt.DefaultPrettyOpts()
	opts.Color = useColor
	return diagfmt.Pretty(os.Stderr, fs, bag, opts)
}
