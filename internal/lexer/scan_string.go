package lexer

import "surge/internal/token"

// scanStringOpen consumes an opening string/command delimiter (one or three
// quote bytes) and pushes a modeString frame so subsequent Next calls route
// through scanStringPiece until the matching close.
func (lx *Lexer) scanStringOpen(flavor stringFlavor) token.RawToken {
	m := lx.cursor.Mark()
	q := flavor.quote()
	lx.cursor.Bump()
	triple := false
	if lx.cursor.Peek() == q && lx.cursor.PeekAt(1) == q {
		lx.cursor.Bump()
		lx.cursor.Bump()
		triple = true
	}
	if triple {
		switch flavor {
		case flavorString:
			flavor = flavorStringTriple
		case flavorCmd:
			flavor = flavorCmdTriple
		}
	}
	lx.pushFrame(frame{kind: modeString, flavor: flavor})
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.StringOpen, Start: start, End: end}
}

// scanStringPiece is dispatched whenever the top of the mode stack is a
// modeString frame: it yields exactly one of StringClose, StringInterpDollar,
// StringInterpParen, or StringChunk, per spec.md §4.1's string piece-token
// model. The frame is popped on StringClose.
func (lx *Lexer) scanStringPiece() token.RawToken {
	top := *lx.topFrame()
	q := top.flavor.quote()

	if lx.atStringClose(top) {
		return lx.closeString(top)
	}

	if lx.cursor.EOF() {
		m := lx.cursor.Mark()
		lx.report("EOF_CHAR", m.span(), m.span(), "unterminated string literal")
		lx.popFrame()
		start, end := lx.cursor.SpanFrom(Mark(m))
		return token.RawToken{Kind: token.StringClose, Start: start, End: end, Err: token.EOFChar}
	}

	if lx.cursor.Peek() == '$' {
		return lx.scanInterpEntry()
	}

	return lx.scanStringChunk(top, q)
}

func (m Mark) span() uint32 { return uint32(m) }

// atStringClose reports whether the cursor sits on the closing delimiter for
// frame f (one quote byte for a plain string, three for a triple string).
func (lx *Lexer) atStringClose(f frame) bool {
	q := f.flavor.quote()
	if lx.cursor.Peek() != q {
		return false
	}
	if !f.flavor.triple() {
		return true
	}
	return lx.cursor.PeekAt(1) == q && lx.cursor.PeekAt(2) == q
}

func (lx *Lexer) closeString(f frame) token.RawToken {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	if f.flavor.triple() {
		lx.cursor.Bump()
		lx.cursor.Bump()
	}
	lx.popFrame()
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.StringClose, Start: start, End: end}
}

// scanInterpEntry consumes the "$" and either a bare identifier (a single
// StringInterpDollar token covering just "$"; the parser re-enters ordinary
// scanning for the identifier expression that follows) or "$(" (a
// StringInterpParen token covering "$(", pushing an interpolation frame so
// the lexer resumes ordinary token scanning until the matching ')').
func (lx *Lexer) scanInterpEntry() token.RawToken {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	if lx.cursor.Peek() == '(' {
		lx.cursor.Bump()
		lx.pushFrame(frame{kind: modeNormal, isInterpFrame: true, parenDepth: 0})
		start, end := lx.cursor.SpanFrom(m)
		return token.RawToken{Kind: token.StringInterpParen, Start: start, End: end}
	}
	// Bare "$name" or "$(" already handled above; a bare interpolation also
	// pushes an interpolation frame, scoped to exactly one identifier
	// expression, so the parser can run ordinary identifier (and trailing
	// "."/"[" postfix) scanning through the same dispatch path.
	lx.pushFrame(frame{kind: modeNormal, isInterpFrame: true, parenDepth: -1})
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.StringInterpDollar, Start: start, End: end}
}

// scanInterpExit closes an interpolation frame. For a "$(" frame this is an
// explicit ')'; for a bare "$name" frame (parenDepth == -1) the parser signals
// the end of the one-identifier expression by calling ExitBareInterp instead
// of consuming a ')', since there is no closing byte to scan.
func (lx *Lexer) scanInterpExit() token.RawToken {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // ')'
	lx.popFrame()
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.StringInterpExit, Start: start, End: end}
}

// ExitBareInterp pops a bare "$name" interpolation frame once the parser has
// finished consuming the identifier (and any trailing "." / "[...]" postfix
// chain) it introduced. It emits a zero-width StringInterpExit so the event
// buffer still records a symmetric enter/exit pair.
func (lx *Lexer) ExitBareInterp() token.RawToken {
	top := lx.topFrame()
	if top == nil || !top.isInterpFrame || top.parenDepth != -1 {
		panic("lexer: ExitBareInterp called outside a bare interpolation frame")
	}
	lx.popFrame()
	off := lx.cursor.Off
	return token.RawToken{Kind: token.StringInterpExit, Start: off, End: off}
}

// scanStringChunk consumes a maximal run of literal text up to (but not
// including) the next '$' or the closing delimiter.
func (lx *Lexer) scanStringChunk(f frame, q byte) token.RawToken {
	m := lx.cursor.Mark()
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '$' {
			break
		}
		if lx.atStringClose(f) {
			break
		}
		if lx.cursor.Peek() == '\\' {
			lx.cursor.Bump() // escape introducer
			if !lx.cursor.EOF() {
				lx.cursor.Bump() // escaped byte, consumed verbatim
			}
			continue
		}
		_ = q
		lx.cursor.Bump()
	}
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.StringChunk, Start: start, End: end}
}

// scanCharLiteral consumes a 'x' character literal. Multi-byte escapes
// ("\n", "\uXXXX") are accepted verbatim here; internal/literal decodes the
// escape to a rune.
func (lx *Lexer) scanCharLiteral() token.RawToken {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			start, end := lx.cursor.SpanFrom(m)
			lx.report("EOF_CHAR", start, end, "unterminated character literal")
			return token.RawToken{Kind: token.CharLit, Start: start, End: end, Err: token.EOFChar}
		}
		if lx.cursor.Peek() == '\\' {
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if lx.cursor.Eat('\'') {
			break
		}
		lx.cursor.Bump()
	}
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.CharLit, Start: start, End: end}
}
