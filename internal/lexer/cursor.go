// Package lexer tokenizes UTF-8 source bytes into the raw token stream the
// parse stream buffers ahead of the parser.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/source"
)

// Cursor is a byte position within a single source file.
type Cursor struct {
	file *source.File
	Off  uint32
}

// NewCursor creates a cursor at the start of file.
func NewCursor(file *source.File) Cursor {
	return Cursor{file: file, Off: 0}
}

func (c *Cursor) limit() uint32 {
	n, err := safecast.Conv[uint32](len(c.file.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: file content length overflow: %w", err))
	}
	return n
}

// EOF reports whether the cursor has consumed all input bytes.
func (c *Cursor) EOF() bool { return c.Off >= c.limit() }

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	off := c.Off + n
	if off >= c.limit() {
		return 0
	}
	return c.file.Content[off]
}

// Peek2 returns the current and next byte, and whether both exist.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.file.Content[c.Off], c.file.Content[c.Off+1], true
}

// Bump consumes and returns the current byte, or 0 at EOF.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.file.Content[c.Off]
	c.Off++
	return b
}

// Eat consumes the current byte if it equals b, reporting whether it did.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.file.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved cursor position, used to compute a SpanFrom once a token
// or trivia run has been fully scanned.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// SpanFrom returns the half-open byte range from m to the cursor's current
// position.
func (c *Cursor) SpanFrom(m Mark) (start, end uint32) { return uint32(m), c.Off }

// Reset rewinds the cursor to a previously saved mark.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// Slice returns the raw bytes between a mark and the cursor's current
// position, as a string.
func (c *Cursor) Slice(m Mark) string {
	return string(c.file.Content[uint32(m):c.Off])
}
