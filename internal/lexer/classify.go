package lexer

import "unicode"

const utf8RuneSelf = 0x80

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOct(b byte) bool { return b >= '0' && b <= '7' }

func isBin(b byte) bool { return b == '0' || b == '1' }

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

// isIdentStartRune reports whether r can begin an identifier once ASCII
// fast paths have been exhausted — letters and a conservative symbol-math
// allowance, mirroring the language's acceptance of e.g. Greek letters.
func isIdentStartRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || unicode.Is(unicode.Sm, r) && isIdentifierishSymbol(r)
}

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r) || unicode.IsMark(r) || isSubSuperscript(r)
}

// isIdentifierishSymbol narrows the math-symbol category to the blocks the
// language actually allows mid-identifier (e.g. U+2200-U+22FF operators
// used as identifiers, like "∑"), rather than every Unicode math symbol.
func isIdentifierishSymbol(r rune) bool {
	return r >= 0x2200 && r <= 0x22FF || r >= 0x2190 && r <= 0x21FF
}

// isSubSuperscript reports whether r is one of the Unicode sub/superscript
// letters the lexer accepts as an operator suffix, e.g. the "₁" in "+₁".
func isSubSuperscript(r rune) bool {
	return r >= 0x2080 && r <= 0x209C || r >= 0x2070 && r <= 0x207F
}
