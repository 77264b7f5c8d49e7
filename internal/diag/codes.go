package diag

// Code is a closed catalog of diagnostic identifiers, independent of the
// lexer's own token.ErrorCode (which only covers lex-time lexeme errors).
// Parser-level diagnostics — recovery from unexpected tokens, malformed
// grammar constructs — get their own Code so diagfmt and tests can key off
// a stable identifier instead of matching message text.
type Code string

const (
	CodeLexError       Code = "LEX_ERROR"
	CodeUnexpectedTok  Code = "UNEXPECTED_TOKEN"
	CodeExpectedTok    Code = "EXPECTED_TOKEN"
	CodeUnclosedDelim  Code = "UNCLOSED_DELIMITER"
	CodeUnexpectedEOF  Code = "UNEXPECTED_EOF"
	CodeMalformedMacro Code = "MALFORMED_MACRO_CALL"
	CodeInvalidAssign  Code = "INVALID_ASSIGNMENT_TARGET"
	CodeStuckParser    Code = "STUCK_PARSER"
	// CodeUnsupportedFeature marks a construct that parses fine under the
	// grammar but is gated off for the active langver.Set, e.g. "try/else"
	// under a version that predates FeatureTryElse.
	CodeUnsupportedFeature Code = "UNSUPPORTED_FEATURE"
)
