package parser

import (
	"surge/internal/cst"
	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/source"
	"surge/internal/token"
	"testing"
)

// parseSource parses input as a whole file with the given feature set and
// returns the built tree together with whatever diagnostics it collected.
func parseSource(t *testing.T, input string, features langver.Set) (*cst.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.jl", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag()
	p := NewWithFeatures(file, bag, features)
	root := p.ParseFile()
	return root, bag
}

// findFirst walks the tree depth-first and returns the first node of kind,
// or nil if none is found.
func findFirst(root *cst.Node, kind token.Kind) *cst.Node {
	if root.Kind == kind {
		return root
	}
	for _, c := range root.Children {
		if c.Node == nil {
			continue
		}
		if found := findFirst(c.Node, kind); found != nil {
			return found
		}
	}
	return nil
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Sorted() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestParseFile_SimpleAssignment(t *testing.T) {
	root, bag := parseSource(t, "x = 1\n", langver.Default())
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
	if findFirst(root, token.NAssign) == nil {
		t.Fatalf("expected an NAssign node in the tree")
	}
}

func TestParseFile_IfElseif(t *testing.T) {
	root, bag := parseSource(t, "if a\n  1\nelseif b\n  2\nelse\n  3\nend\n", langver.Default())
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
	ifNode := findFirst(root, token.NIf)
	if ifNode == nil {
		t.Fatalf("expected an NIf node")
	}
	if findFirst(ifNode, token.NElseif) == nil {
		t.Fatalf("expected a nested NElseif node")
	}
}

func TestParseFile_UnclosedIfRecoversWithDiagnostic(t *testing.T) {
	root, bag := parseSource(t, "if a\n  1\n", langver.Default())
	if !bag.HasErrors() {
		t.Fatalf("expected an unclosed-delimiter diagnostic")
	}
	if findFirst(root, token.NIf) == nil {
		t.Fatalf("expected a well-formed NIf node despite the missing end")
	}
}

func TestParseFile_FieldAccessIsOpCallWithDotFlag(t *testing.T) {
	root, bag := parseSource(t, "a.b.c\n", langver.Default())
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
	opCall := findFirst(root, token.NOpCall)
	if opCall == nil {
		t.Fatalf("expected an NOpCall node for field access")
	}
	if !opCall.Flags.Has(token.FlagDotOp) {
		t.Fatalf("expected FlagDotOp on the field-access node")
	}
}

func TestParseFile_DoBlockSingleParamAlwaysAccepted(t *testing.T) {
	_, bag := parseSource(t, "map(xs) do x\n  x\nend\n", 0)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
}

func TestParseFile_DoBlockMultiParamGatedByFeature(t *testing.T) {
	src := "map(xs) do a, b\n  a\nend\n"

	_, bagOff := parseSource(t, src, 0)
	if !hasCode(bagOff, diag.CodeUnsupportedFeature) {
		t.Fatalf("expected CodeUnsupportedFeature with the feature disabled, got %+v", bagOff.Sorted())
	}

	_, bagOn := parseSource(t, src, langver.Set(0).With(langver.FeatureDoBlockMulti))
	if hasCode(bagOn, diag.CodeUnsupportedFeature) {
		t.Fatalf("did not expect CodeUnsupportedFeature with the feature enabled, got %+v", bagOn.Sorted())
	}
}

func TestParseFile_TryElseGatedByFeature(t *testing.T) {
	src := "try\n  1\ncatch e\n  2\nelse\n  3\nend\n"

	_, bagOff := parseSource(t, src, 0)
	if !hasCode(bagOff, diag.CodeUnsupportedFeature) {
		t.Fatalf("expected CodeUnsupportedFeature with the feature disabled, got %+v", bagOff.Sorted())
	}

	root, bagOn := parseSource(t, src, langver.Set(0).With(langver.FeatureTryElse))
	if hasCode(bagOn, diag.CodeUnsupportedFeature) {
		t.Fatalf("did not expect CodeUnsupportedFeature with the feature enabled, got %+v", bagOn.Sorted())
	}
	if findFirst(root, token.NTry) == nil {
		t.Fatalf("expected an NTry node")
	}
}

func TestParseFile_ConstWithoutInitializerGatedByFeature(t *testing.T) {
	_, bagOff := parseSource(t, "const x\n", 0)
	if !hasCode(bagOff, diag.CodeUnsupportedFeature) {
		t.Fatalf("expected CodeUnsupportedFeature with the feature disabled, got %+v", bagOff.Sorted())
	}

	_, bagOn := parseSource(t, "const x\n", langver.Set(0).With(langver.FeatureConstNoInit))
	if hasCode(bagOn, diag.CodeUnsupportedFeature) {
		t.Fatalf("did not expect CodeUnsupportedFeature with the feature enabled, got %+v", bagOn.Sorted())
	}
}

func TestParseFile_ConstWithInitializerNeverGated(t *testing.T) {
	_, bag := parseSource(t, "const x = 1\n", 0)
	if hasCode(bag, diag.CodeUnsupportedFeature) {
		t.Fatalf("did not expect CodeUnsupportedFeature when the const has an initializer, got %+v", bag.Sorted())
	}
}

func TestParseFile_ImportAsGatedByFeature(t *testing.T) {
	src := "import foo as f\n"

	_, bagOff := parseSource(t, src, 0)
	if !hasCode(bagOff, diag.CodeUnsupportedFeature) {
		t.Fatalf("expected CodeUnsupportedFeature with the feature disabled, got %+v", bagOff.Sorted())
	}

	root, bagOn := parseSource(t, src, langver.Set(0).With(langver.FeatureImportAs))
	if hasCode(bagOn, diag.CodeUnsupportedFeature) {
		t.Fatalf("did not expect CodeUnsupportedFeature with the feature enabled, got %+v", bagOn.Sorted())
	}
	if findFirst(root, token.NImport) == nil {
		t.Fatalf("expected an NImport node")
	}
}

func TestParseFile_PlainImportNeverGated(t *testing.T) {
	_, bag := parseSource(t, "import foo\n", 0)
	if hasCode(bag, diag.CodeUnsupportedFeature) {
		t.Fatalf("did not expect CodeUnsupportedFeature for a plain import, got %+v", bag.Sorted())
	}
}

func TestParseFile_NamedTupleGatedByFeature(t *testing.T) {
	src := "(a = 1, b = 2)\n"

	rootOff, _ := parseSource(t, src, 0)
	if findFirst(rootOff, token.NNamedTuple) != nil {
		t.Fatalf("did not expect an NNamedTuple node with the feature disabled")
	}
	if findFirst(rootOff, token.NTuple) == nil {
		t.Fatalf("expected a plain NTuple node with the feature disabled")
	}

	rootOn, _ := parseSource(t, src, langver.Set(0).With(langver.FeatureNamedTuple))
	if findFirst(rootOn, token.NNamedTuple) == nil {
		t.Fatalf("expected an NNamedTuple node with the feature enabled")
	}
}

func TestParseFile_PlainTupleNeverBecomesNamedTuple(t *testing.T) {
	root, _ := parseSource(t, "(1, 2, 3)\n", langver.Set(0).With(langver.FeatureNamedTuple))
	if findFirst(root, token.NNamedTuple) != nil {
		t.Fatalf("did not expect an NNamedTuple node for an all-positional tuple")
	}
}

func TestParseFile_MixedPositionalAndKeywordStaysPlainTuple(t *testing.T) {
	root, _ := parseSource(t, "(1, b = 2)\n", langver.Set(0).With(langver.FeatureNamedTuple))
	if findFirst(root, token.NNamedTuple) != nil {
		t.Fatalf("did not expect an NNamedTuple node when not every element is a keyword pair")
	}
}

func TestParseFile_CommandStringGetsFlagRaw(t *testing.T) {
	root, bag := parseSource(t, "`echo hi`\n", langver.Default())
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
	str := findFirst(root, token.NString)
	if str == nil {
		t.Fatalf("expected an NString node for the command string")
	}
	if !str.Flags.Has(token.FlagRaw) {
		t.Fatalf("expected FlagRaw on a backtick-delimited command string")
	}
}

func TestParseFile_QuotedStringDoesNotGetFlagRaw(t *testing.T) {
	root, bag := parseSource(t, "\"hello\"\n", langver.Default())
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
	str := findFirst(root, token.NString)
	if str == nil {
		t.Fatalf("expected an NString node for the quoted string")
	}
	if str.Flags.Has(token.FlagRaw) {
		t.Fatalf("did not expect FlagRaw on a quote-delimited string")
	}
}

func TestParseFile_TripleCommandStringGetsFlagRaw(t *testing.T) {
	root, bag := parseSource(t, "```echo hi```\n", langver.Default())
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Sorted())
	}
	str := findFirst(root, token.NStringTriple)
	if str == nil {
		t.Fatalf("expected an NStringTriple node for the triple command string")
	}
	if !str.Flags.Has(token.FlagRaw) {
		t.Fatalf("expected FlagRaw on a triple-backtick command string")
	}
}

func TestParseFile_LosslessCoverage(t *testing.T) {
	src := "x = 1 + 2 # trailing comment\n"
	root, _ := parseSource(t, src, langver.Default())
	if root.Span.Start != 0 || int(root.Span.End) != len(src) {
		t.Fatalf("expected the root span to cover the whole file, got [%d, %d) for length %d", root.Span.Start, root.Span.End, len(src))
	}
}
