// Package testkit checks a built tree against the structural invariants a
// lossless CST must hold, independent of any particular grammar. It exists
// so both the package tests and the CLI's "check" subcommand can run the
// same checks against a tree.
package testkit

import (
	"fmt"

	"surge/internal/cst"
	"surge/internal/source"
	"surge/internal/token"
)

// Violation is one invariant failure found while walking a tree.
type Violation struct {
	Property string
	Detail   string
	Span     source.Span
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s (%s)", v.Property, v.Detail, v.Span)
}

// CheckAll runs every structural property check against root and returns
// every violation found, in no particular order. An empty result means root
// is a well-formed lossless CST over contentLen bytes.
func CheckAll(root *cst.Node, contentLen uint32) []Violation {
	var out []Violation
	out = append(out, CheckLosslessCoverage(root, contentLen)...)
	out = append(out, CheckMonotonicity(root)...)
	out = append(out, CheckContainment(root)...)
	out = append(out, CheckTombstoneElision(root)...)
	return out
}

// leaves returns every leaf token in root, in source order.
func leaves(root *cst.Node) []*cst.Leaf {
	var out []*cst.Leaf
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		for _, c := range n.Children {
			if c.Leaf != nil {
				out = append(out, c.Leaf)
			} else {
				walk(c.Node)
			}
		}
	}
	walk(root)
	return out
}

// CheckLosslessCoverage verifies the concatenation of leaf byte ranges tiles
// [0, contentLen) exactly: no gap, no overlap, starting at 0 and ending at
// contentLen. Zero-width (invisible/synthetic) leaves are allowed anywhere,
// since they consume no bytes and so cannot create a gap or overlap.
func CheckLosslessCoverage(root *cst.Node, contentLen uint32) []Violation {
	var out []Violation
	ls := leaves(root)
	var cursor uint32
	for _, l := range ls {
		if l.Raw.Start < cursor {
			out = append(out, Violation{
				Property: "lossless-coverage",
				Detail:   fmt.Sprintf("leaf %s starts at %d, before cursor %d (overlap)", l.Raw.Kind, l.Raw.Start, cursor),
				Span:     l.Span,
			})
			continue
		}
		if l.Raw.Start > cursor && l.Raw.Len() > 0 {
			out = append(out, Violation{
				Property: "lossless-coverage",
				Detail:   fmt.Sprintf("gap [%d, %d) before leaf %s", cursor, l.Raw.Start, l.Raw.Kind),
				Span:     l.Span,
			})
		}
		if l.Raw.End > cursor {
			cursor = l.Raw.End
		}
	}
	if cursor != contentLen {
		out = append(out, Violation{
			Property: "lossless-coverage",
			Detail:   fmt.Sprintf("coverage ends at %d, want %d", cursor, contentLen),
			Span:     root.Span,
		})
	}
	return out
}

// CheckMonotonicity verifies that for any two leaves in source order,
// prev.End <= next.Start — byte ranges never run backwards. A zero-width
// invisible leaf is exempt (its End can equal or precede its own Start's
// neighbors without indicating disorder).
func CheckMonotonicity(root *cst.Node) []Violation {
	var out []Violation
	ls := leaves(root)
	for i := 1; i < len(ls); i++ {
		prev, next := ls[i-1], ls[i]
		if prev.Raw.Len() == 0 || next.Raw.Len() == 0 {
			continue
		}
		if prev.Raw.End > next.Raw.Start {
			out = append(out, Violation{
				Property: "byte-range-monotonicity",
				Detail:   fmt.Sprintf("leaf %s (end %d) overlaps following leaf %s (start %d)", prev.Raw.Kind, prev.Raw.End, next.Raw.Kind, next.Raw.Start),
				Span:     next.Span,
			})
		}
	}
	return out
}

// CheckContainment verifies every node's recorded span equals the union of
// its children's spans, recursively — the tree builder computes this at
// construction time, so a violation here means a node's Span field was
// mutated incorrectly after Build, or a custom constructor (per spec.md §9's
// node-constructor hook) was plugged in wrong.
func CheckContainment(root *cst.Node) []Violation {
	var out []Violation
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		want := source.Span{File: n.Span.File, Start: n.Span.Start, End: n.Span.Start}
		first := true
		for _, c := range n.Children {
			cs := c.Span()
			if first {
				want = cs
				first = false
			} else {
				want = want.Cover(cs)
			}
			if c.Node != nil {
				walk(c.Node)
			}
		}
		if !first && want != n.Span {
			out = append(out, Violation{
				Property: "tree-containment",
				Detail:   fmt.Sprintf("node %s span %s does not match children union %s", n.Kind, n.Span, want),
				Span:     n.Span,
			})
		}
	}
	walk(root)
	return out
}

// CheckTombstoneElision verifies no built node or leaf carries
// token.Tombstone — tombstoned events are skipped entirely at build time, so
// finding one here means the builder's tombstone handling regressed.
func CheckTombstoneElision(root *cst.Node) []Violation {
	var out []Violation
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		if n.Kind == token.Tombstone {
			out = append(out, Violation{Property: "tombstone-elision", Detail: "node carries Tombstone kind", Span: n.Span})
		}
		for _, c := range n.Children {
			if c.Leaf != nil {
				if c.Leaf.Raw.Kind == token.Tombstone {
					out = append(out, Violation{Property: "tombstone-elision", Detail: "leaf carries Tombstone kind", Span: c.Leaf.Span})
				}
				continue
			}
			walk(c.Node)
		}
	}
	walk(root)
	return out
}
