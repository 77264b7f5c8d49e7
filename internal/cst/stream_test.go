package cst

import (
	"testing"

	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

func newTestStream(src string) *Stream {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jl", []byte(src))
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{})
	return New(lx, id, nil)
}

func TestStream_PeekIsIdempotent(t *testing.T) {
	s := newTestStream("a b")
	p1 := s.Peek(0)
	p2 := s.Peek(0)
	if p1.Raw.Kind != p2.Raw.Kind || p1.Raw.Start != p2.Raw.Start {
		t.Fatalf("Peek(0) should be idempotent, got %v then %v", p1, p2)
	}
}

func TestStream_PeekLookahead(t *testing.T) {
	s := newTestStream("a b c")
	if s.PeekKind(0) != token.Identifier || s.PeekKind(1) != token.Identifier || s.PeekKind(2) != token.Identifier {
		t.Fatalf("expected three identifiers in lookahead")
	}
}

func TestStream_BumpAdvances(t *testing.T) {
	s := newTestStream("a b")
	first := s.Bump()
	second := s.PeekKind(0)
	if first.Kind != token.Identifier {
		t.Fatalf("expected first bump to be an identifier, got %v", first.Kind)
	}
	if second != token.Identifier {
		t.Fatalf("expected second token still an identifier, got %v", second)
	}
	if first.Start == 0 && first.End == 0 {
		t.Fatalf("expected first token to have a real span")
	}
}

func TestStream_PeekBehind(t *testing.T) {
	s := newTestStream("a b")
	s.Bump()
	tok, ok := s.PeekBehind(0)
	if !ok {
		t.Fatalf("expected PeekBehind(0) to succeed after one Bump")
	}
	if tok.Kind != token.Identifier {
		t.Fatalf("expected an identifier, got %v", tok.Kind)
	}
	if _, ok := s.PeekBehind(1); ok {
		t.Fatalf("expected PeekBehind(1) to fail after only one Bump")
	}
}

func TestStream_PeekBehindStr(t *testing.T) {
	s := newTestStream("hello world")
	s.Bump()
	if got := s.PeekBehindStr(0); got != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
}

func TestStream_TriviaAttachesToFollowingToken(t *testing.T) {
	s := newTestStream("  a")
	tok := s.Peek(0)
	if !tok.HadWhitespace {
		t.Fatalf("expected leading whitespace to be recorded on the following token")
	}
}

func TestStream_BumpRecordsTriviaIntoBuffer(t *testing.T) {
	s := newTestStream("  a")
	before := s.Buffer().Len()
	s.Bump()
	after := s.Buffer().Len()
	// one whitespace trivia event + one token event
	if after-before != 2 {
		t.Fatalf("expected 2 events appended (trivia + token), got %d", after-before)
	}
}

func TestStream_StartCompleteRoundTrip(t *testing.T) {
	s := newTestStream("a")
	m := s.Start()
	s.Bump()
	s.Complete(m, token.NName, 0)
	node := Build(s.file, s.Buffer())
	if node.Kind != token.NName {
		t.Fatalf("expected NName, got %v", node.Kind)
	}
}

func TestStream_BumpInvisible(t *testing.T) {
	s := newTestStream("2x")
	m := s.Start()
	s.Bump() // "2"
	s.BumpInvisible(token.NInvisible)
	s.Bump() // "x"
	s.Complete(m, token.NBlock, 0)

	node := Build(s.file, s.Buffer())
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children (2, invisible, x), got %d", len(node.Children))
	}
	mid := node.Children[1].Leaf
	if mid == nil || mid.Raw.Len() != 0 {
		t.Fatalf("expected the invisible token to be zero-width, got %+v", mid)
	}
}

func TestStream_BumpGlue(t *testing.T) {
	s := newTestStream("a b")
	glued := s.BumpGlue(token.Identifier)
	if glued.Start != 0 {
		t.Fatalf("expected glued token to start at 0, got %d", glued.Start)
	}
	if glued.End != 3 {
		t.Fatalf("expected glued token to end at 3 (covering both words), got %d", glued.End)
	}
}

func TestStream_BumpSplit(t *testing.T) {
	s := newTestStream(">>")
	first, second := s.BumpSplit(1, token.OpGt, token.OpGt)
	if first.Start != 0 || first.End != 1 {
		t.Fatalf("expected first split token [0,1), got [%d,%d)", first.Start, first.End)
	}
	if second.Start != 1 || second.End != 2 {
		t.Fatalf("expected second split token [1,2), got [%d,%d)", second.Start, second.End)
	}
}

func TestStream_AbandonDropsUnusedNode(t *testing.T) {
	s := newTestStream("a")
	before := s.Buffer().Len()
	m := s.Start()
	s.Abandon(m)
	if s.Buffer().Len() != before {
		t.Fatalf("expected Abandon on an empty span to pop the tombstone")
	}
}

func TestStream_PrecedeViaStream(t *testing.T) {
	s := newTestStream("a.b")
	base := s.Start()
	s.Bump() // "a"
	s.Complete(base, token.NName, 0)

	access := s.Precede(base)
	s.Bump() // "."
	s.Bump() // "b"
	s.Complete(access, token.NOpCall, token.FlagDotOp)

	node := Build(s.file, s.Buffer())
	if node.Kind != token.NOpCall {
		t.Fatalf("expected NOpCall, got %v", node.Kind)
	}
	if len(node.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(node.Children))
	}
}
