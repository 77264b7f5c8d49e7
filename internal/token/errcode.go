package token

// ErrorCode is the closed set of lex-time error tags a RawToken can carry
// (spec.md §6 "Error-code enumeration"). A non-NoErr code never aborts the
// lexer — the token's Kind is retained so the parser can still absorb it.
type ErrorCode uint8

const (
	NoErr ErrorCode = iota
	EOFMultiComment
	EOFChar
	InvalidNumericConstant
	InvalidOperator
	InvalidInterpolationTerminator
	UnknownErr
)

func (c ErrorCode) String() string {
	switch c {
	case NoErr:
		return "NO_ERR"
	case EOFMultiComment:
		return "EOF_MULTICOMMENT"
	case EOFChar:
		return "EOF_CHAR"
	case InvalidNumericConstant:
		return "INVALID_NUMERIC_CONSTANT"
	case InvalidOperator:
		return "INVALID_OPERATOR"
	case InvalidInterpolationTerminator:
		return "INVALID_INTERPOLATION_TERMINATOR"
	default:
		return "UNKNOWN"
	}
}
