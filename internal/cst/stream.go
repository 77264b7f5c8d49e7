package cst

import (
	"fmt"

	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

// maxPeekCount bounds how many times Peek may be called without an
// intervening Bump before the stream assumes the parser is stuck in a loop
// and panics rather than hang. Reset to zero on every consuming operation.
const maxPeekCount = 100_000

// lookahead is one significant token together with the trivia tokens the
// lexer produced immediately before it.
type lookahead struct {
	trivia []token.RawToken
	tok    token.SyntaxToken
}

// Stream is the lookahead-buffered reader a recursive-descent parser drives.
// It pulls raw tokens from a lexer.Lexer, classifies whitespace/newline/
// comment runs as trivia decorating the following significant token, and
// records every consumed token (trivia included) into an event Buffer so
// the whole parse folds into a lossless tree once it's done.
type Stream struct {
	lx    *lexer.Lexer
	file  source.FileID
	buf   *Buffer
	diags *diag.Bag

	sig []lookahead

	behind []token.RawToken // history of already-bumped significant tokens

	peekCount int
}

// New creates a Stream over lx, recording into diags and tagging spans
// against file.
func New(lx *lexer.Lexer, file source.FileID, diags *diag.Bag) *Stream {
	return &Stream{lx: lx, file: file, buf: NewBuffer(), diags: diags}
}

// Buffer exposes the underlying event buffer for Build once parsing is
// complete.
func (s *Stream) Buffer() *Buffer { return s.buf }

// fill ensures s.sig has at least n+1 entries, pulling from the lexer and
// bucketing leading trivia as it goes.
func (s *Stream) fill(n int) {
	for len(s.sig) <= n {
		var trivia []token.RawToken
		hadWS, hadNL := false, false
		for {
			raw := s.lx.Next()
			if !raw.Kind.IsTrivia() {
				s.sig = append(s.sig, lookahead{
					trivia: trivia,
					tok:    token.SyntaxToken{Raw: raw, HadWhitespace: hadWS, HadNewline: hadNL},
				})
				break
			}
			trivia = append(trivia, raw)
			hadWS = true
			if raw.Kind == token.NewlineWs {
				hadNL = true
			}
		}
	}
}

// watchdog increments the peek counter and panics if the parser appears to
// be looping without making progress.
func (s *Stream) watchdog() {
	s.peekCount++
	if s.peekCount > maxPeekCount {
		panic(fmt.Sprintf("cst: peek count exceeded %d without a bump; parser is stuck", maxPeekCount))
	}
}

// Peek returns the n-th lookahead significant token (0 is "current") along
// with whether trivia preceded it.
func (s *Stream) Peek(n int) token.SyntaxToken {
	s.watchdog()
	s.fill(n)
	return s.sig[n].tok
}

// PeekKind is shorthand for Peek(n).Raw.Kind.
func (s *Stream) PeekKind(n int) token.Kind {
	return s.Peek(n).Raw.Kind
}

// PeekStr returns the source text of the n-th lookahead significant token,
// for a client that needs to compare an Identifier against a contextual
// keyword spelling (the lexer never reclassifies those, see
// token.LookupContextualKeyword).
func (s *Stream) PeekStr(n int) string {
	return s.sliceRaw(s.Peek(n).Raw)
}

// PeekBehind returns the significant RawToken bumped n positions ago (0 is
// the most recently bumped token). ok is false if fewer than n+1 tokens
// have been bumped yet.
func (s *Stream) PeekBehind(n int) (token.RawToken, bool) {
	idx := len(s.behind) - 1 - n
	if idx < 0 {
		return token.RawToken{}, false
	}
	return s.behind[idx], true
}

// PeekBehindStr returns the source text of PeekBehind(n).
func (s *Stream) PeekBehindStr(n int) string {
	t, ok := s.PeekBehind(n)
	if !ok {
		return ""
	}
	return s.sliceRaw(t)
}

func (s *Stream) sliceRaw(t token.RawToken) string {
	content := s.fileContent()
	if t.End > uint32(len(content)) {
		return ""
	}
	return string(content[t.Start:t.End])
}

func (s *Stream) fileContent() []byte {
	return s.lx.FileContent()
}

// Position returns a Mark naming the current length of the event buffer —
// the "start_mark" a node opened right now would record.
func (s *Stream) Position() Mark { return Mark(s.buf.Len()) }

// Start opens a new node in the event buffer.
func (s *Stream) Start() Mark { return s.buf.Start() }

// Complete finalizes the node opened at m.
func (s *Stream) Complete(m Mark, kind token.Kind, flags token.Flags) { s.buf.Complete(m, kind, flags) }

// Abandon discards a speculative node that turned out not to be needed.
func (s *Stream) Abandon(m Mark) { s.buf.Abandon(m) }

// Precede retroactively wraps the node completed at m in a new parent node.
func (s *Stream) Precede(m Mark) Mark { return s.buf.Precede(m) }

// ResetNode re-tags an already-opened node's kind without touching its
// children, e.g. once the parser discovers a tuple is actually a named
// tuple after seeing its first element.
func (s *Stream) ResetNode(m Mark, kind token.Kind) { s.buf.ResetKind(m, kind) }

// KindAt reports the kind a completed node at m was tagged with.
func (s *Stream) KindAt(m Mark) token.Kind { return s.buf.KindAt(m) }

// Bump consumes the current significant token: its leading trivia is
// appended to the event buffer first (in source order), then the token
// itself, and the lookahead queue advances by one. It returns the consumed
// RawToken.
func (s *Stream) Bump() token.RawToken {
	s.fill(0)
	head := s.sig[0]
	s.sig = s.sig[1:]
	s.peekCount = 0

	for _, tr := range head.trivia {
		s.buf.PushToken(tr)
	}
	s.buf.PushToken(head.tok.Raw)
	s.behind = append(s.behind, head.tok.Raw)
	return head.tok.Raw
}

// BumpTrivia consumes and records exactly the pending trivia ahead of the
// current significant token, without consuming the token itself. This is
// for callers that need to close a node's span right before a token that
// logically belongs to the next node (e.g. attaching a comment as this
// node's trailing trivia rather than the following node's leading trivia).
func (s *Stream) BumpTrivia() {
	s.fill(0)
	head := &s.sig[0]
	for _, tr := range head.trivia {
		s.buf.PushToken(tr)
	}
	head.trivia = nil
	s.peekCount = 0
}

// BumpInvisible appends a zero-width synthetic leaf of kind at the current
// position, without consuming anything from the lookahead queue — used for
// tokens the grammar implies but the source never spelled out, such as the
// implicit multiplication in "2x".
func (s *Stream) BumpInvisible(kind token.Kind) {
	s.fill(0)
	off := s.sig[0].tok.Raw.Start
	if len(s.sig[0].trivia) > 0 {
		off = s.sig[0].trivia[0].Start
	}
	s.buf.PushToken(token.RawToken{Kind: kind, Start: off, End: off})
	s.peekCount = 0
}

// BumpGlue consumes the current and next significant tokens and records
// them as one leaf of kind, spanning from the first token's start to the
// second's end. Used when two tokens the lexer produced separately are
// syntactically inseparable, e.g. a contextual keyword sequence.
func (s *Stream) BumpGlue(kind token.Kind) token.RawToken {
	s.fill(1)
	first := s.sig[0].tok.Raw
	for _, tr := range s.sig[0].trivia {
		s.buf.PushToken(tr)
	}
	second := s.sig[1].tok.Raw
	for _, tr := range s.sig[1].trivia {
		s.buf.PushToken(tr)
	}
	glued := token.RawToken{Kind: kind, Start: first.Start, End: second.End}
	s.buf.PushToken(glued)
	s.behind = append(s.behind, glued)
	s.sig = s.sig[2:]
	s.peekCount = 0
	return glued
}

// BumpSplit consumes the current significant token and records it as two
// adjacent leaves instead of one, splitting its span at byte offset at
// (relative to the token's own Start). Used to reinterpret a token like
// ">>" as two ">" tokens when closing nested generic-looking brackets.
func (s *Stream) BumpSplit(at uint32, firstKind, secondKind token.Kind) (token.RawToken, token.RawToken) {
	s.fill(0)
	head := s.sig[0]
	s.sig = s.sig[1:]
	s.peekCount = 0

	for _, tr := range head.trivia {
		s.buf.PushToken(tr)
	}
	mid := head.tok.Raw.Start + at
	first := token.RawToken{Kind: firstKind, Start: head.tok.Raw.Start, End: mid}
	second := token.RawToken{Kind: secondKind, Start: mid, End: head.tok.Raw.End}
	s.buf.PushToken(first)
	s.buf.PushToken(second)
	s.behind = append(s.behind, first, second)
	return first, second
}

// ExitBareInterp closes a bare "$name" interpolation frame in the lexer and
// records the zero-width exit marker it produces, keeping the event buffer
// symmetric between interpolation entry and exit markers.
func (s *Stream) ExitBareInterp() {
	t := s.lx.ExitBareInterp()
	s.buf.PushToken(t)
}

// EmitDiagnostic records a diagnostic at span without affecting the event
// buffer's structure.
func (s *Stream) EmitDiagnostic(code diag.Code, severity diag.Severity, span source.Span, msg string) {
	if s.diags == nil {
		return
	}
	s.diags.Add(diag.New(severity, code, span, msg))
}
