package lexer

import "surge/internal/token"

// scanOperatorOrPunct handles everything that is not a trivia run, a number,
// an identifier, or a string/char literal open: symbolic operators and
// single-byte delimiters, including the dotted-broadcast ('.+') and
// unicode-suffixed ('+₁') operator variants from spec.md §4.1.
func (lx *Lexer) scanOperatorOrPunct() token.RawToken {
	m := lx.cursor.Mark()

	dotted := false
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		// Only a prefix if what follows is itself operator-shaped — this is
		// the ".op" broadcast form, e.g. ".+", ".==". The bare ".." / "..."
		// run operators are excluded by the PeekAt(1) guard above so they
		// are never misread as a dotted "." followed by ".".
		if _, kind, ok := token.LongestOperatorMatch(lx.restFrom(m.plus1())); ok && kind != token.OpDot {
			dotted = true
			lx.cursor.Bump()
		}
	}

	if kind, isDelim := lx.scanDelimiter(); isDelim {
		start, end := lx.cursor.SpanFrom(m)
		return token.RawToken{Kind: kind, Start: start, End: end}
	}

	text := lx.restFrom(lx.cursor.Mark())
	opText, kind, ok := token.LongestOperatorMatch(text)
	if !ok {
		lx.cursor.Bump()
		start, end := lx.cursor.SpanFrom(m)
		lx.report("INVALID_OPERATOR", start, end, "unrecognized operator byte")
		return token.RawToken{Kind: token.InvalidOp, Start: start, End: end, Err: token.InvalidOperator, IsDotted: dotted}
	}
	for range opText {
		lx.cursor.Bump()
	}

	suffixed := lx.consumeSuffixRunes()

	start, end := lx.cursor.SpanFrom(m)
	return token.RawToken{Kind: kind, Start: start, End: end, IsDotted: dotted, IsSuffixed: suffixed}
}

// scanDelimiter consumes a single-byte structural delimiter, if the cursor
// sits on one. Delimiters are never dotted or suffixed.
func (lx *Lexer) scanDelimiter() (token.Kind, bool) {
	kind, ok := delimiterKinds[lx.cursor.Peek()]
	if !ok {
		return token.Nothing, false
	}
	lx.cursor.Bump()
	return kind, true
}

var delimiterKinds = map[byte]token.Kind{
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	';': token.Semicolon,
	'@': token.At,
}

// consumeSuffixRunes consumes a run of Unicode sub/superscript runes
// directly following an operator, e.g. the "₁" in "+₁", reporting whether
// any were consumed.
func (lx *Lexer) consumeSuffixRunes() bool {
	any := false
	for {
		r, w := lx.peekRune()
		if w == 0 || !isSubSuperscript(r) {
			break
		}
		for i := 0; i < w; i++ {
			lx.cursor.Bump()
		}
		any = true
	}
	return any
}

// maxOperatorLen bounds restFrom's window: no entry in the operator table is
// longer than this.
const maxOperatorLen = 3

// restFrom returns up to maxOperatorLen source bytes starting at m, enough
// to resolve any entry in the operator table, without advancing the cursor.
func (lx *Lexer) restFrom(m Mark) string {
	start := uint32(m)
	end := start + maxOperatorLen
	if limit := uint32(len(lx.file.Content)); end > limit {
		end = limit
	}
	if start > end {
		return ""
	}
	return string(lx.file.Content[start:end])
}

func (m Mark) plus1() Mark { return m + 1 }
