package literal

import "golang.org/x/text/unicode/norm"

// NormalizeIdent canonicalizes an identifier's Unicode representation to NFC
// so that e.g. an "é" written as the combining sequence "e" + U+0301 and one
// written as the single precomposed codepoint compare equal as the same
// binding name. This is a value-decoding concern, not a lexer byte-span
// concern — the lexer's identifier span covers whatever bytes were written;
// only the decoded name is normalized.
func NormalizeIdent(s string) string {
	return norm.NFC.String(s)
}
