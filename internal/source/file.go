package source

// FileFlags records metadata about how a file's bytes were obtained.
type FileFlags uint8

const (
	// FileVirtual marks a file added from memory (tests, stdin, a REPL).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose leading UTF-8 BOM was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were
	// normalized to LF on load.
	FileNormalizedCRLF
)

// LineCol is a 1-based human-readable position within a File.
type LineCol struct {
	Line uint32
	Col  uint32
}

// File is a single immutable source buffer plus the metadata needed to
// resolve byte offsets to line/column positions. The core lexer and parse
// stream only ever need Content; FileSet exists for tooling that juggles
// more than one file (the CLI, diagnostics rendering across files).
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // LineIdx[i] is the byte offset of the i-th '\n' (0-based)
	Flags   FileFlags
}

// GetLine returns the 1-based line's text, without its trailing newline, or
// "" if line is out of range.
func (f *File) GetLine(line uint32) string {
	if line == 0 {
		return ""
	}
	start := lineStartOffset(f, line)
	end := lineEndOffsetExclusive(f, line)
	if start >= uint32(len(f.Content)) || start > end {
		return ""
	}
	if end > uint32(len(f.Content)) {
		end = uint32(len(f.Content))
	}
	return string(f.Content[start:end])
}

// LineCount returns the number of lines in the file (always >= 1 for
// non-empty content, including a trailing unterminated line).
func (f *File) LineCount() uint32 {
	return uint32(len(f.LineIdx)) + 1
}

func lineStartOffset(f *File, line uint32) uint32 {
	if line <= 1 {
		return 0
	}
	idx := line - 2
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx] + 1
	}
	return uint32(len(f.Content))
}

func lineEndOffsetExclusive(f *File, line uint32) uint32 {
	idx := line - 1
	if int(idx) < len(f.LineIdx) {
		return f.LineIdx[idx]
	}
	return uint32(len(f.Content))
}

// buildLineIndex scans content once and records the byte offset of every
// '\n'. Offsets are later used for O(log n) line/column resolution.
func buildLineIndex(content []byte) []uint32 {
	var idx []uint32
	for i, b := range content {
		if b == '\n' {
			idx = append(idx, uint32(i))
		}
	}
	return idx
}

// toLineCol resolves a byte offset to a 1-based LineCol using a line index
// built by buildLineIndex.
func toLineCol(lineIdx []uint32, offset uint32) LineCol {
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) / 2
		if lineIdx[mid] < offset {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := uint32(lo) + 1
	var lineStart uint32
	if lo > 0 {
		lineStart = lineIdx[lo-1] + 1
	}
	return LineCol{Line: line, Col: offset - lineStart + 1}
}
