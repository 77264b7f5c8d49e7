package lexer

import (
	"surge/internal/source"
	"surge/internal/token"
)

// Lexer produces an infinite lazy sequence of RawTokens over a single
// source file, terminating in (and then repeating) token.EOF. It never
// aborts: every lex error is attached to the offending token instead.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	// modes is the scanning-discipline stack described in modes.go. It
	// starts with a single modeNormal frame and only grows while inside a
	// string literal (and, recursively, inside that string's
	// interpolations).
	modes []frame

	look *token.RawToken // one-token pushback buffer for Peek
}

// New creates a Lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:  file,
		cursor: NewCursor(file),
		opts:  opts,
		modes: []frame{{kind: modeNormal}},
	}
}

// FileContent exposes the raw source bytes being lexed, for callers (the
// parse stream's PeekBehindStr) that need to slice out a token's text.
func (lx *Lexer) FileContent() []byte { return lx.file.Content }

// EmptySpan returns a zero-width span at the lexer's current position,
// useful for diagnostics produced before any token has been scanned.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// Peek returns the next RawToken without consuming it.
func (lx *Lexer) Peek() token.RawToken {
	if lx.look == nil {
		t := lx.next()
		lx.look = &t
	}
	return *lx.look
}

// Next consumes and returns the next RawToken.
func (lx *Lexer) Next() token.RawToken {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}
	return lx.next()
}

// next is the unbuffered core of the lexer: it dispatches to string-mode or
// normal-mode scanning depending on the top of the mode stack.
func (lx *Lexer) next() token.RawToken {
	if lx.inStringMode() {
		return lx.scanStringPiece()
	}
	return lx.scanNormal()
}

// scanNormal implements spec.md §4.1's next_token for everything outside a
// string literal: whitespace/newline/comment trivia is scanned by the
// caller (the parse stream) via Peek/Next the same as any other token — the
// lexer itself emits trivia as ordinary RawTokens with trivia kinds, and
// lets the parse stream decide what is significant.
func (lx *Lexer) scanNormal() token.RawToken {
	if lx.cursor.EOF() {
		return lx.eofToken()
	}

	if tok, ok := lx.scanTrivia(); ok {
		return tok
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '_':
		return lx.scanUnderscoreOrIdent()
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		if lx.peekIdentStartRune() {
			return lx.scanIdentOrKeyword()
		}
		return lx.scanOperatorOrPunct()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	case ch == '"':
		return lx.scanStringOpen(flavorString)
	case ch == '`':
		return lx.scanStringOpen(flavorCmd)
	case ch == '\'':
		return lx.scanCharLiteral()
	case ch == '(' && lx.topInterpFrame() != nil:
		lx.topInterpFrame().parenDepth++
		return lx.scanOperatorOrPunct()
	case ch == ')' && lx.topInterpFrame() != nil && lx.topInterpFrame().parenDepth == 0:
		return lx.scanInterpExit()
	case ch == ')' && lx.topInterpFrame() != nil:
		lx.topInterpFrame().parenDepth--
		return lx.scanOperatorOrPunct()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// topInterpFrame returns the current mode frame if it was pushed by a
// "$(" interpolation entry, else nil.
func (lx *Lexer) topInterpFrame() *frame {
	top := lx.topFrame()
	if top != nil && top.kind == modeNormal && top.isInterpFrame {
		return top
	}
	return nil
}

func (lx *Lexer) eofToken() token.RawToken {
	return token.RawToken{Kind: token.EOF, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) peekIdentStartRune() bool {
	r, _ := lx.peekRune()
	return isIdentStartRune(r)
}

// peekRune decodes the rune at the cursor without consuming it, returning
// its byte width too.
func (lx *Lexer) peekRune() (rune, int) {
	return decodeRuneAt(lx.file.Content, lx.cursor.Off)
}
