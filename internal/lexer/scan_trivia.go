package lexer

import "surge/internal/token"

// scanTrivia recognizes one run of whitespace, a single line comment, or a
// single (possibly nested) block comment at the cursor. It returns ok=false
// if the cursor is not at trivia at all, leaving the cursor untouched.
//
// Unlike the teacher's collectLeadingTrivia, which eagerly gathers a whole
// leading-trivia run into one Token before returning the next significant
// token, this lexer emits trivia one run at a time and leaves run-gathering
// to the parse stream's lookahead buffer (spec.md §3: trivia classification
// is the stream's job, not the lexer's).
func (lx *Lexer) scanTrivia() (token.RawToken, bool) {
	ch := lx.cursor.Peek()
	switch {
	case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
		return lx.scanWhitespaceRun(), true
	case ch == '#':
		if b1 := lx.cursor.PeekAt(1); b1 == '=' {
			return lx.scanBlockComment(), true
		}
		return lx.scanLineComment(), true
	default:
		return token.RawToken{}, false
	}
}

func (lx *Lexer) scanWhitespaceRun() token.RawToken {
	m := lx.cursor.Mark()
	sawNewline := false
	for {
		ch := lx.cursor.Peek()
		if ch != ' ' && ch != '\t' && ch != '\r' && ch != '\n' {
			break
		}
		if ch == '\n' {
			sawNewline = true
		}
		lx.cursor.Bump()
	}
	start, end := lx.cursor.SpanFrom(m)
	kind := token.Whitespace
	if sawNewline {
		kind = token.NewlineWs
	}
	return token.RawToken{Kind: kind, Start: start, End: end}
}

func (lx *Lexer) scanLineComment() token.RawToken {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.LineComment, Start: start, End: end}
}

// scanBlockComment consumes a "#= ... =#" comment, correctly matching nested
// "#=...=#" pairs, mirroring the teacher's nested-block-comment handling in
// collectLeadingTrivia.
func (lx *Lexer) scanBlockComment() token.RawToken {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.cursor.Bump() // '='
	depth := 1
	for depth > 0 {
		if lx.cursor.EOF() {
			start, end := lx.cursor.SpanFrom(m)
			lx.report("EOF_MULTICOMMENT", start, end, "unterminated block comment")
			return token.RawToken{Kind: token.BlockComment, Start: start, End: end, Err: token.EOFMultiComment}
		}
		b0, b1, ok := lx.cursor.Peek2()
		switch {
		case ok && b0 == '#' && b1 == '=':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth++
		case ok && b0 == '=' && b1 == '#':
			lx.cursor.Bump()
			lx.cursor.Bump()
			depth--
		default:
			lx.cursor.Bump()
		}
	}
	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: token.BlockComment, Start: start, End: end}
}
