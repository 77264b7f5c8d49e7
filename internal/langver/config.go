package langver

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the decoded shape of an optional grammar-version TOML file,
// e.g.:
//
//	version = "1.5"
//
//	[features]
//	try_else = true
//	named_tuple = false
type Config struct {
	Version  string          `toml:"version"`
	Features map[string]bool `toml:"features"`
}

// Load reads and decodes a grammar-version config file at path, returning
// the resulting Set. An unknown feature key in [features] is reported as an
// error rather than silently ignored, so a typo doesn't quietly disable the
// wrong gate.
func Load(path string) (Set, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	set := Default()
	if meta.IsDefined("version") && cfg.Version != "" {
		set = ForVersion(cfg.Version)
	}

	for name, enabled := range cfg.Features {
		f, ok := knownFeatureNames[name]
		if !ok {
			return 0, fmt.Errorf("%s: unknown feature %q in [features]", path, name)
		}
		if enabled {
			set = set.With(f)
		} else {
			set = set.Without(f)
		}
	}
	return set, nil
}
