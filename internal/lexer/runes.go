package lexer

import "unicode/utf8"

// decodeRuneAt decodes the rune starting at byte offset off in content,
// returning utf8.RuneError/1 for invalid encodings so scanning can always
// make progress.
func decodeRuneAt(content []byte, off uint32) (rune, int) {
	if off >= uint32(len(content)) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRune(content[off:])
}
