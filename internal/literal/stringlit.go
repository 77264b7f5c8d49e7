package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Unescape decodes a single string/char literal chunk's backslash escapes
// (the "cooked" form, spec.md §4.2). raw is the literal text between
// delimiters, with no interpolation pieces inside it (those are decoded as
// separate chunks by the caller and concatenated at the tree level).
// Triple-quoted chunks do not call this directly — they are dedented first,
// per spec.md §4.2, but then carry their escapes through to the same decoder
// used by plain strings chunk-by-chunk. A literal (unescaped) "\r" or
// "\r\n" run is normalized to "\n", same as source-level line handling.
func Unescape(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c == '\r' {
			b.WriteByte('\n')
			i++
			if i < len(raw) && raw[i] == '\n' {
				i++
			}
			continue
		}
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("literal: dangling escape at end of string")
		}
		esc := raw[i]
		switch {
		case esc == 'n':
			b.WriteByte('\n')
			i++
		case esc == 't':
			b.WriteByte('\t')
			i++
		case esc == 'r':
			b.WriteByte('\r')
			i++
		case esc == 'e':
			b.WriteByte(0x1b)
			i++
		case esc == 'a':
			b.WriteByte('\a')
			i++
		case esc == 'b':
			b.WriteByte('\b')
			i++
		case esc == 'f':
			b.WriteByte('\f')
			i++
		case esc == 'v':
			b.WriteByte('\v')
			i++
		case esc == '\\', esc == '"', esc == '\'', esc == '$', esc == '`':
			b.WriteByte(esc)
			i++
		case esc >= '0' && esc <= '7':
			v, n, err := readOctalEscape(raw[i:])
			if err != nil {
				return "", err
			}
			b.WriteByte(byte(v))
			i += n
		case esc == 'x':
			r, n, err := readFixedHexEscape(raw[i+1:], 2)
			if err != nil {
				return "", err
			}
			b.WriteByte(byte(r))
			i += 1 + n
		case esc == 'u':
			r, n, err := readUnicodeEscape(raw[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 1 + n
		case esc == 'U':
			r, n, err := readVariableHexEscape(raw[i+1:], 8)
			if err != nil {
				return "", err
			}
			if r > 0x10FFFF {
				return "", fmt.Errorf("literal: \\U escape %#x exceeds U+10FFFF", r)
			}
			b.WriteRune(r)
			i += 1 + n
		case esc == '\n':
			i++
			i += skipIndent(raw[i:])
		case esc == '\r':
			i++
			if i < len(raw) && raw[i] == '\n' {
				i++
			}
			i += skipIndent(raw[i:])
		default:
			// Unrecognized escape: per spec.md's error-tolerant lexing
			// philosophy, keep the backslash and the byte verbatim rather
			// than failing the whole literal.
			b.WriteByte('\\')
			b.WriteByte(esc)
			i++
		}
	}
	return b.String(), nil
}

// UnescapeRaw decodes a command-string ("`...`") literal chunk: backslashes
// are kept verbatim except directly in front of the closing delimiter, where
// a run of n backslashes halves to n/2 (the (n/2)'th-rounded-down survivors
// still precede the delimiter byte, which UnescapeRaw does not itself
// consume — callers pass only the chunk text between delimiters). Per
// spec.md §4.2's raw-unescape rule, this is the only transformation a raw
// string chunk gets: no letter escapes, no octal, no \x/\u/\U.
func UnescapeRaw(raw string, delim byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		if raw[i] != '\\' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		run := 0
		for i+run < len(raw) && raw[i+run] == '\\' {
			run++
		}
		if i+run < len(raw) && raw[i+run] == delim {
			b.WriteString(strings.Repeat(`\`, run/2))
			b.WriteByte(delim)
			i += run + 1
			continue
		}
		b.WriteString(strings.Repeat(`\`, run))
		i += run
	}
	return b.String()
}

func readFixedHexEscape(rest string, width int) (rune, int, error) {
	if len(rest) < width {
		return 0, 0, fmt.Errorf("literal: truncated \\x escape")
	}
	n, err := strconv.ParseUint(rest[:width], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("literal: invalid \\x escape: %w", err)
	}
	return rune(n), width, nil
}

// readVariableHexEscape reads up to maxWidth hex digits greedily, requiring
// at least one.
func readVariableHexEscape(rest string, maxWidth int) (rune, int, error) {
	n := 0
	for n < maxWidth && n < len(rest) && isHexDigit(rest[n]) {
		n++
	}
	if n == 0 {
		return 0, 0, fmt.Errorf("literal: escape has no hex digits")
	}
	v, err := strconv.ParseUint(rest[:n], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("literal: invalid hex escape: %w", err)
	}
	return rune(v), n, nil
}

// readOctalEscape reads 1-3 octal digits starting at rest[0] (already known
// to be an octal digit) and requires the resulting byte value fit in 0-255.
func readOctalEscape(rest string) (byte, int, error) {
	n := 1
	for n < 3 && n < len(rest) && rest[n] >= '0' && rest[n] <= '7' {
		n++
	}
	v, err := strconv.ParseUint(rest[:n], 8, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("literal: invalid octal escape: %w", err)
	}
	if v > 255 {
		return 0, 0, fmt.Errorf("literal: octal escape \\%s exceeds byte range", rest[:n])
	}
	return byte(v), n, nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func skipIndent(s string) int {
	n := 0
	for n < len(s) && (s[n] == ' ' || s[n] == '\t') {
		n++
	}
	return n
}

// readUnicodeEscape accepts both "\uXXXX" (exactly 4 hex digits) and
// "\u{X...}" (1-6 hex digits in braces).
func readUnicodeEscape(rest string) (rune, int, error) {
	if strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return 0, 0, fmt.Errorf("literal: unterminated \\u{...} escape")
		}
		n, err := strconv.ParseUint(rest[1:end], 16, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("literal: invalid \\u{...} escape: %w", err)
		}
		return rune(n), end + 1, nil
	}
	r, n, err := readFixedHexEscape(rest, 4)
	return r, n, err
}
