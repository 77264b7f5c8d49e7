package cst

import (
	"surge/internal/source"
	"surge/internal/token"
)

// Node is a built non-terminal: a Kind/Flags tag plus the ordered children
// the tree builder folded under it, including trivia leaves — nothing in
// the source text between Node.Span.Start and Node.Span.End is ever
// dropped.
type Node struct {
	Kind     token.Kind
	Flags    token.Flags
	Children []Element
	Span     source.Span
}

// Leaf is a built terminal: one token (significant or trivia) together with
// the byte span it covers.
type Leaf struct {
	Raw  token.RawToken
	Span source.Span
}

// Element is exactly one of Node or Leaf.
type Element struct {
	Node *Node
	Leaf *Leaf
}

// Span returns the covering span of whichever of Node/Leaf is set.
func (e Element) Span() source.Span {
	if e.Node != nil {
		return e.Node.Span
	}
	return e.Leaf.Span
}

// IsTrivia reports whether this element is a single trivia leaf.
func (e Element) IsTrivia() bool {
	return e.Leaf != nil && e.Leaf.Raw.Kind.IsTrivia()
}

// FirstToken returns the first leaf token spanned by this element, diving
// into Node children as needed; ok is false for an empty node.
func (e Element) FirstToken() (token.RawToken, bool) {
	if e.Leaf != nil {
		return e.Leaf.Raw, true
	}
	for _, c := range e.Node.Children {
		if t, ok := c.FirstToken(); ok {
			return t, true
		}
	}
	return token.RawToken{}, false
}

// LastToken returns the last leaf token spanned by this element.
func (e Element) LastToken() (token.RawToken, bool) {
	if e.Leaf != nil {
		return e.Leaf.Raw, true
	}
	for i := len(e.Node.Children) - 1; i >= 0; i-- {
		if t, ok := e.Node.Children[i].LastToken(); ok {
			return t, true
		}
	}
	return token.RawToken{}, false
}
