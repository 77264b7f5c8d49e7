package langver

// entry pairs a released version with the features it introduced relative
// to the previous entry. The table is ordered oldest-first; ForVersion
// accumulates every entry up to and including the requested version.
type entry struct {
	version string
	adds    Feature
}

// builtinTable is the default, hand-maintained version/feature history.
// It never needs to be exhaustive of every language change, only of the
// changes that affect what the grammar accepts.
var builtinTable = []entry{
	{version: "1.0", adds: 0},
	{version: "1.3", adds: FeatureConstNoInit},
	{version: "1.5", adds: FeatureNamedTuple},
	{version: "1.6", adds: FeatureDoBlockMulti},
	{version: "1.8", adds: FeatureTryElse | FeatureImportAs},
}

// Latest is the newest version name in the built-in table.
func Latest() string {
	if len(builtinTable) == 0 {
		return ""
	}
	return builtinTable[len(builtinTable)-1].version
}

// Default returns the cumulative feature Set for Latest.
func Default() Set { return ForVersion(Latest()) }

// ForVersion returns the cumulative feature Set for every entry up to and
// including version. An unrecognized version name falls back to Default,
// since rejecting input over an unknown version string would make the
// parser less permissive than just accepting everything known.
func ForVersion(version string) Set {
	var s Set
	found := false
	for _, e := range builtinTable {
		s = s.With(e.adds)
		if e.version == version {
			found = true
			break
		}
	}
	if !found {
		return Default()
	}
	return s
}

// knownFeatureNames maps the TOML config's feature keys to Feature values,
// for Load's per-feature override section.
var knownFeatureNames = map[string]Feature{
	"try_else":       FeatureTryElse,
	"const_no_init":  FeatureConstNoInit,
	"import_as":      FeatureImportAs,
	"do_block_multi": FeatureDoBlockMulti,
	"named_tuple":    FeatureNamedTuple,
}
