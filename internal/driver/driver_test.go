package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"surge/internal/langver"
	"surge/internal/parsecache"
	"surge/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestTokenize_CollectsTokensAndNoDiagnosticsForCleanInput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.jl", "x = 1\n")

	fs := source.NewFileSet()
	res, err := Tokenize(fs, nil, path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Sorted())
	}
	if len(res.Tokens) == 0 {
		t.Fatalf("expected at least one token")
	}
}

func TestTokenize_CacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.jl", "x = 1\n")

	cache, err := parsecache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open cache: %v", err)
	}

	fs := source.NewFileSet()
	first, err := Tokenize(fs, cache, path)
	if err != nil {
		t.Fatalf("Tokenize (cold): %v", err)
	}
	if first.Cached {
		t.Fatalf("expected a cold run to not be marked cached")
	}

	second, err := Tokenize(fs, cache, path)
	if err != nil {
		t.Fatalf("Tokenize (warm): %v", err)
	}
	if !second.Cached {
		t.Fatalf("expected the second run to hit the cache")
	}
	if len(second.Tokens) != len(first.Tokens) {
		t.Fatalf("expected the cached token count to match, got %d vs %d", len(second.Tokens), len(first.Tokens))
	}
}

func TestParse_BuildsTreeForValidInput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.jl", "x = 1 + 2\n")

	fs := source.NewFileSet()
	res, err := Parse(fs, path, langver.Default())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Bag.Sorted())
	}
	if res.Root == nil {
		t.Fatalf("expected a built tree")
	}
}

func TestDiagnose_ReportsNoViolationsForWellFormedInput(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.jl", "function f(x)\n  x + 1\nend\n")

	fs := source.NewFileSet()
	res, err := Diagnose(fs, path, langver.Default())
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("unexpected invariant violations: %+v", res.Violations)
	}
}

func TestTokenizeDir_ProcessesEveryFileInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.jl", "y = 2\n")
	writeFile(t, dir, "a.jl", "x = 1\n")
	writeFile(t, dir, "c.txt", "not julia\n")

	fs := source.NewFileSet()
	results, err := TokenizeDir(context.Background(), fs, nil, dir, 2)
	if err != nil {
		t.Fatalf("TokenizeDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 .jl files, got %d", len(results))
	}
	if filepath.Base(results[0].Path) != "a.jl" || filepath.Base(results[1].Path) != "b.jl" {
		t.Fatalf("expected sorted order a.jl, b.jl, got %s, %s", results[0].Path, results[1].Path)
	}
}

func TestParseDir_EmptyDirectoryReturnsNoResults(t *testing.T) {
	dir := t.TempDir()
	fs := source.NewFileSet()
	results, err := ParseDir(context.Background(), fs, dir, langver.Default(), 0)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for an empty directory, got %d", len(results))
	}
}

func TestDiagnoseDir_AggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.jl", "x = 1\n")
	writeFile(t, dir, "bad.jl", "if a\n  1\n")

	fs := source.NewFileSet()
	results, err := DiagnoseDir(context.Background(), fs, dir, langver.Default(), 0)
	if err != nil {
		t.Fatalf("DiagnoseDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	var sawError bool
	for _, r := range results {
		if r.Bag.HasErrors() {
			sawError = true
		}
	}
	if !sawError {
		t.Fatalf("expected at least one file to have a diagnostic error")
	}
}
