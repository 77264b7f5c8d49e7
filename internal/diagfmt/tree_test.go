package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/parser"
	"surge/internal/source"
)

func parseForTree(t *testing.T, src string) (*source.File, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jl", []byte(src))
	file := fs.Get(id)
	return file, fs
}

func TestTree_RendersEveryVisibleNodeAndLeaf(t *testing.T) {
	file, _ := parseForTree(t, "x = 1\n")
	p := parser.NewWithFeatures(file, diag.NewBag(), langver.Default())
	root := p.ParseFile()

	var buf bytes.Buffer
	opts := DefaultTreeOpts()
	opts.Color = false
	if err := Tree(&buf, file, root, opts); err != nil {
		t.Fatalf("Tree: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "=") {
		t.Fatalf("expected the assignment node's \"=\" label to appear, got:\n%s", out)
	}
	if !strings.Contains(out, `"x"`) {
		t.Fatalf("expected the identifier leaf text to appear, got:\n%s", out)
	}
}

func TestTree_HidesTriviaByDefault(t *testing.T) {
	file, _ := parseForTree(t, "x = 1 # comment\n")
	p := parser.NewWithFeatures(file, diag.NewBag(), langver.Default())
	root := p.ParseFile()

	var buf bytes.Buffer
	opts := DefaultTreeOpts()
	opts.Color = false
	if err := Tree(&buf, file, root, opts); err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if strings.Contains(buf.String(), "comment") {
		t.Fatalf("did not expect trivia text when ShowTrivia is false, got:\n%s", buf.String())
	}
}

func TestTreeJSON_ProducesValidNestedDocument(t *testing.T) {
	file, _ := parseForTree(t, "x = 1\n")
	p := parser.NewWithFeatures(file, diag.NewBag(), langver.Default())
	root := p.ParseFile()

	var buf bytes.Buffer
	if err := TreeJSON(&buf, file, root, DefaultJSONOpts()); err != nil {
		t.Fatalf("TreeJSON: %v", err)
	}

	var doc treeJSON
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Kind == "" {
		t.Fatalf("expected a root Kind")
	}
	if len(doc.Children) == 0 {
		t.Fatalf("expected the root to have children")
	}
}

func TestTruncateTokenText_LeavesShortTextUntouched(t *testing.T) {
	if got := truncateTokenText("abc", 10); got != "abc" {
		t.Fatalf("expected unchanged short text, got %q", got)
	}
}

func TestTruncateTokenText_TruncatesLongText(t *testing.T) {
	got := truncateTokenText("abcdefghij", 4)
	if got != "abcd…" {
		t.Fatalf("expected truncation with ellipsis, got %q", got)
	}
}
