package cst

import (
	"testing"

	"surge/internal/token"
)

func rawTok(kind token.Kind, start, end uint32) token.RawToken {
	return token.RawToken{Kind: kind, Start: start, End: end}
}

func TestBuffer_StartCompleteNesting(t *testing.T) {
	buf := NewBuffer()
	root := buf.Start()
	buf.PushToken(rawTok(token.Identifier, 0, 1))
	buf.Complete(root, token.NName, 0)

	if buf.Len() != 3 { // tombstone-turned-start, token, finish
		t.Fatalf("expected 3 events, got %d", buf.Len())
	}
}

func TestBuffer_Abandon_PoppedWhenEmpty(t *testing.T) {
	buf := NewBuffer()
	before := buf.Len()
	m := buf.Start()
	buf.Abandon(m)
	if buf.Len() != before {
		t.Fatalf("expected Abandon to pop the tombstone, buffer grew from %d to %d", before, buf.Len())
	}
}

func TestBuffer_Abandon_LeftAsTombstoneWhenNonEmpty(t *testing.T) {
	buf := NewBuffer()
	m := buf.Start()
	buf.PushToken(rawTok(token.Identifier, 0, 1))
	before := buf.Len()
	buf.Abandon(m)
	if buf.Len() != before {
		t.Fatalf("Abandon on a non-empty span should not shrink the buffer, got %d -> %d", before, buf.Len())
	}
}

func TestBuffer_ResetKind(t *testing.T) {
	buf := NewBuffer()
	m := buf.Start()
	buf.Complete(m, token.NTuple, 0)
	buf.ResetKind(m, token.NNamedTuple)

	node := Build(0, buf)
	if node.Kind != token.NNamedTuple {
		t.Fatalf("expected ResetKind to retag the node, got %v", node.Kind)
	}
}
