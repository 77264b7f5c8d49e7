package lexer

import "surge/internal/token"

// isNumberAfterDot reports whether a '.' at the cursor should be scanned as
// the start of a float literal like ".5" rather than the dot operator.
func (lx *Lexer) isNumberAfterDot() bool {
	return isDec(lx.cursor.PeekAt(1))
}

// scanNumber consumes one numeric literal: decimal/hex/octal/binary integer,
// or a decimal float (with optional exponent and 'f'/'F' marker), plus an
// optional "im" suffix.
// Digit-group underscores are accepted anywhere a digit is, per spec.md
// §4.1; the literal's exact numeric value is decided later by
// internal/literal, not here — the lexer only delimits the lexeme and picks
// a literal Kind.
func (lx *Lexer) scanNumber() token.RawToken {
	m := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadixInt(m, token.HexIntLit, isHexOrUnderscore)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadixInt(m, token.OctIntLit, isOctOrUnderscore)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadixInt(m, token.BinIntLit, isBinOrUnderscore)
		}
	}

	lx.scanDecDigits()

	isFloat := false
	// "1." or "1.5", but not "1..2" (a range): a '.' is only part of the
	// number if it is not itself the start of a ".."/"..." operator run.
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		isFloat = true
		lx.cursor.Bump()
		lx.scanDecDigits()
	}

	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		if ch2 := lx.cursor.Peek(); ch2 == '+' || ch2 == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			isFloat = true
			lx.scanDecDigits()
		} else {
			lx.cursor.Reset(save)
		}
	}

	// trailing 'f'/'F' (Float32) or "im" (imaginary, lexed as part of the
	// literal text; internal/literal has no imaginary decode, so DecodeInt and
	// DecodeFloat return an error for such a lexeme). 'f'/'F' is
	// a float marker exactly like 'e'/'E': it may stand alone ("2.0f") or
	// introduce its own optional-signed digit run ("2.0f0", "1.5f-3").
	if ch := lx.cursor.Peek(); ch == 'f' || ch == 'F' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		signConsumed := false
		if ch2 := lx.cursor.Peek(); ch2 == '+' || ch2 == '-' {
			lx.cursor.Bump()
			signConsumed = true
		}
		switch {
		case isDec(lx.cursor.Peek()):
			isFloat = true
			lx.scanDecDigits()
		case !signConsumed && !isIdentContinueByte(lx.cursor.Peek()):
			isFloat = true
		default:
			lx.cursor.Reset(save)
		}
	}
	if lx.cursor.Peek() == 'i' && lx.cursor.PeekAt(1) == 'm' && !isIdentContinueByte(lx.cursor.PeekAt(2)) {
		lx.cursor.Bump()
		lx.cursor.Bump()
	}

	start, end := lx.cursor.SpanFrom(m)
	kind := token.IntegerLit
	if isFloat {
		kind = token.FloatLit
	}
	return token.RawToken{Kind: kind, Start: start, End: end}
}

func (lx *Lexer) scanDecDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func isHexOrUnderscore(b byte) bool { return isHex(b) || b == '_' }
func isOctOrUnderscore(b byte) bool { return isOct(b) || b == '_' }
func isBinOrUnderscore(b byte) bool { return isBin(b) || b == '_' }

func (lx *Lexer) finishRadixInt(m Mark, kind token.Kind, accept func(byte) bool) token.RawToken {
	digits := 0
	for accept(lx.cursor.Peek()) {
		if lx.cursor.Peek() != '_' {
			digits++
		}
		lx.cursor.Bump()
	}
	start, end := lx.cursor.SpanFrom(m)
	if digits == 0 {
		lx.report("INVALID_NUMERIC_CONSTANT", start, end, "radix literal has no digits")
		return token.RawToken{Kind: kind, Start: start, End: end, Err: token.InvalidNumericConstant}
	}
	return token.RawToken{Kind: kind, Start: start, End: end}
}
