package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"surge/internal/cst"
	"surge/internal/source"
)

// TreeOpts configures Tree's indented rendering of a built CST.
type TreeOpts struct {
	Color bool
	// ShowTrivia includes whitespace/comment/newline leaves; off by default
	// since they dominate the output for anything beyond a few lines.
	ShowTrivia bool
	// MaxTokenLen truncates a leaf's rendered source text beyond this many
	// bytes, so one long string literal doesn't blow out the whole dump. 0
	// falls back to 40.
	MaxTokenLen int
}

// DefaultTreeOpts returns sensible defaults for an interactive terminal.
func DefaultTreeOpts() TreeOpts {
	return TreeOpts{Color: true, ShowTrivia: false, MaxTokenLen: 40}
}

var (
	nodeColor = color.New(color.FgCyan, color.Bold)
	leafColor = color.New(color.FgYellow)
	spanColor = color.New(color.FgHiBlack)
)

// Tree writes an indented, one-node-per-line rendering of root to w, in the
// style of `tree`/`kast -t`: each node's Kind and byte span, each leaf's
// Kind and (possibly truncated) source text.
func Tree(w io.Writer, file *source.File, root *cst.Node, opts TreeOpts) error {
	if opts.MaxTokenLen <= 0 {
		opts.MaxTokenLen = 40
	}
	return writeTreeNode(w, file, cst.Element{Node: root}, opts, "", true)
}

func writeTreeNode(w io.Writer, file *source.File, el cst.Element, opts TreeOpts, prefix string, last bool) error {
	if el.IsTrivia() && !opts.ShowTrivia {
		return nil
	}

	branch := "├── "
	childPrefix := prefix + "│   "
	if last {
		branch = "└── "
		childPrefix = prefix + "    "
	}

	label, err := treeLabel(file, el, opts)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, prefix+branch+label); err != nil {
		return err
	}

	if el.Node == nil {
		return nil
	}
	children := el.Node.Children
	if !opts.ShowTrivia {
		children = visibleChildren(children)
	}
	for i, c := range children {
		if err := writeTreeNode(w, file, c, opts, childPrefix, i == len(children)-1); err != nil {
			return err
		}
	}
	return nil
}

func visibleChildren(children []cst.Element) []cst.Element {
	out := make([]cst.Element, 0, len(children))
	for _, c := range children {
		if c.IsTrivia() {
			continue
		}
		out = append(out, c)
	}
	return out
}

func treeLabel(file *source.File, el cst.Element, opts TreeOpts) (string, error) {
	span := el.Span()
	spanStr := fmt.Sprintf("[%d,%d)", span.Start, span.End)
	if opts.Color {
		spanStr = spanColor.Sprint(spanStr)
	}

	if el.Node != nil {
		kind := el.Node.Kind.String()
		if opts.Color {
			kind = nodeColor.Sprint(kind)
		}
		return kind + " " + spanStr, nil
	}

	kind := el.Leaf.Raw.Kind.String()
	text := truncateTokenText(string(file.Content[span.Start:span.End]), opts.MaxTokenLen)
	if opts.Color {
		kind = leafColor.Sprint(kind)
	}
	return fmt.Sprintf("%s %s %q", kind, spanStr, text), nil
}

func truncateTokenText(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", "\\n")
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}

// treeJSON is the JSON-serializable shape of one cst.Element.
type treeJSON struct {
	Kind     string     `json:"kind"`
	Start    uint32     `json:"start"`
	End      uint32     `json:"end"`
	Text     string     `json:"text,omitempty"`
	Children []treeJSON `json:"children,omitempty"`
}

func toTreeJSON(file *source.File, el cst.Element, showTrivia bool) treeJSON {
	span := el.Span()
	if el.Leaf != nil {
		return treeJSON{
			Kind:  el.Leaf.Raw.Kind.String(),
			Start: span.Start,
			End:   span.End,
			Text:  string(file.Content[span.Start:span.End]),
		}
	}
	children := el.Node.Children
	if !showTrivia {
		children = visibleChildren(children)
	}
	out := treeJSON{Kind: el.Node.Kind.String(), Start: span.Start, End: span.End}
	for _, c := range children {
		out.Children = append(out.Children, toTreeJSON(file, c, showTrivia))
	}
	return out
}

// TreeJSON writes root to w as a nested JSON document, one object per node
// or leaf, for editor integrations that want to walk the tree themselves.
func TreeJSON(w io.Writer, file *source.File, root *cst.Node, opts JSONOpts) error {
	doc := toTreeJSON(file, cst.Element{Node: root}, false)
	enc := json.NewEncoder(w)
	if opts.Indent != "" {
		enc.SetIndent("", opts.Indent)
	}
	return enc.Encode(doc)
}
