package lexer

import "surge/internal/token"

// scanUnderscoreOrIdent scans an identifier that starts with "_": a lone
// "_" (the anonymous binding placeholder) and a name such as "_x" both lex
// as an ordinary Identifier through scanIdentOrKeyword.
func (lx *Lexer) scanUnderscoreOrIdent() token.RawToken {
	return lx.scanIdentOrKeyword()
}

// scanIdentOrKeyword consumes a maximal run of identifier-continue bytes and
// runes, then classifies the result against the keyword table. Contextual
// keywords are deliberately left classified as Identifier here — only the
// parser, which knows the surrounding grammar position, may reinterpret them
// (spec.md §4.1).
func (lx *Lexer) scanIdentOrKeyword() token.RawToken {
	m := lx.cursor.Mark()
	for {
		ch := lx.cursor.Peek()
		if ch < utf8RuneSelf {
			if !isIdentContinueByte(ch) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, w := lx.peekRune()
		if w == 0 || !isIdentContinueRune(r) {
			break
		}
		for i := 0; i < w; i++ {
			lx.cursor.Bump()
		}
	}
	start, end := lx.cursor.SpanFrom(m)
	text := lx.cursor.Slice(m)
	if kind, ok := token.LookupKeyword(text); ok {
		return token.RawToken{Kind: kind, Start: start, End: end}
	}
	return token.RawToken{Kind: token.Identifier, Start: start, End: end}
}
