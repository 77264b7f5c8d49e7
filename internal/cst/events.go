// Package cst implements the lookahead-buffered parse stream and the
// append-only event buffer that folds into a lossless concrete syntax tree.
// Nothing here knows about Julia grammar; it is pure plumbing that any
// recursive-descent client (internal/parser) drives.
package cst

import "surge/internal/token"

type eventTag uint8

const (
	evTombstone eventTag = iota
	evStart
	evFinish
	evToken
)

// Event is one entry of the append-only buffer a Stream writes as the
// parser consumes tokens. Non-terminal nodes are opened with evStart and
// closed with evFinish; every terminal (including trivia) is one evToken.
// A Start event's ForwardParent, when set, names another Start event later
// in the buffer that should fold in as this node's parent — the mechanism
// behind Buffer.Precede's retroactive reshaping, see builder.go.
type Event struct {
	tag eventTag

	kind  token.Kind
	flags token.Flags

	// forwardParent is a 1-based relative offset to another Start event,
	// or 0 if this Start has no (yet-known) forward parent.
	forwardParent uint32

	raw token.RawToken
}

// Mark names a position in the event buffer, returned by Buffer.Start and
// consumed by Buffer.Complete/Abandon/Precede. It doubles as the
// "start_mark" the tree builder folds the buffer against.
type Mark uint32

// Buffer is the append-only event log. It never reorders or deletes
// entries; Precede is the only operation that revises the shape of an
// already-completed subtree, and it does so by adding a forward link rather
// than rewriting anything in place.
type Buffer struct {
	events []Event
}

// NewBuffer creates an empty event buffer.
func NewBuffer() *Buffer { return &Buffer{} }

// Len reports how many events have been recorded so far.
func (b *Buffer) Len() int { return len(b.events) }

// Start opens a new node and returns its Mark. The node has no kind yet —
// Complete assigns one once the caller knows how the node should be tagged
// (this is what lets a parser start speculatively and decide the node kind
// only after seeing how much it actually consumed).
func (b *Buffer) Start() Mark {
	m := Mark(len(b.events))
	b.events = append(b.events, Event{tag: evTombstone})
	return m
}

// Complete finalizes the node opened at m as kind/flags and appends its
// matching Finish event. Every event appended since m becomes this node's
// children once the tree is built.
func (b *Buffer) Complete(m Mark, kind token.Kind, flags token.Flags) {
	b.events[m] = Event{tag: evStart, kind: kind, flags: flags}
	b.events = append(b.events, Event{tag: evFinish})
}

// Abandon discards a node that was opened but never needed, e.g. a
// speculative production that backtracked. If nothing was appended since m
// the tombstone is simply popped; otherwise it is left as a tombstone so
// the builder skips over it and its children attach to whatever node
// encloses m instead.
func (b *Buffer) Abandon(m Mark) {
	if int(m) == len(b.events)-1 {
		b.events = b.events[:m]
		return
	}
}

// KindAt returns the kind a Start event at m was last tagged with by
// Complete or ResetKind. It is meant for a client that needs to inspect
// what a just-completed subtree turned out to be (e.g. whether an
// expression it parsed ended up being an assignment) without waiting for
// the tree to be built.
func (b *Buffer) KindAt(m Mark) token.Kind { return b.events[m].kind }

// ResetKind re-tags an already-started node without touching its children —
// used when the parser discovers, only after consuming some children, what
// the node actually is (e.g. distinguishing a named tuple from a plain
// tuple once it sees the first "name =" pair).
func (b *Buffer) ResetKind(m Mark, kind token.Kind) {
	b.events[m].kind = kind
}

// Precede retroactively wraps the node completed at m inside a new
// enclosing node: a new Start event is appended now (physically after
// everything recorded so far, including m's own Finish), and m's Start
// event is linked forward to it. The tree builder later folds this so the
// new node becomes m's parent, even though m was written to the buffer
// first. This is how a chain of postfix operations (calls, indexing, field
// access) gets built left-deep without predicting the chain's length in
// advance: parse the base expression, then for each postfix operator seen,
// Precede the previous result into a new node.
func (b *Buffer) Precede(m Mark) Mark {
	newMark := b.Start()
	b.events[m].forwardParent = uint32(newMark) - uint32(m)
	return newMark
}

// PushToken appends a single leaf event (a significant token, a piece of
// trivia, or an invisible/glued/split synthetic token) to the buffer.
func (b *Buffer) PushToken(raw token.RawToken) {
	b.events = append(b.events, Event{tag: evToken, raw: raw})
}
