package token

import "surge/internal/source"

// RawToken is what the lexer produces: a classified, byte-measured slice of
// the source with no trivia bookkeeping attached (that is the parse
// stream's job). Start/End are a half-open byte range into the source File.
type RawToken struct {
	Kind       Kind
	Start, End uint32
	Err        ErrorCode
	IsDotted   bool // leading '.' broadcast marker, e.g. ".+"
	IsSuffixed bool // trailing unicode sub/superscript suffix, e.g. "+₁"
}

// Span returns the token's byte range against file.
func (t RawToken) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: t.Start, End: t.End}
}

// Len returns the number of bytes the token covers.
func (t RawToken) Len() uint32 { return t.End - t.Start }

// Flags is a small bitset describing how an event was produced, carried on
// every TaggedRange so the tree builder and diagnostics consumers can tell
// e.g. a dotted "+=" apart from a plain one without re-deriving it from
// bytes.
type Flags uint16

const (
	FlagTrivia    Flags = 1 << iota // whitespace/comment/newline event
	FlagDotOp                       // broadcast ".op" form
	FlagInfix                       // produced as part of an infix operator chain
	FlagToplevelSemi                // top-level statement separator semicolon
	FlagSuffixed                     // unicode-suffixed operator
	FlagInvisible                   // zero-width inserted token
	FlagError                        // this event carries/marks a parse error
	FlagRaw                          // command-string (`...`) node: raw, not cooked, unescape semantics
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool { return f&want == want }

// SyntaxHead is a Kind plus its Flags — together they tell the tree builder
// how to tag a node, per spec.md §3.
type SyntaxHead struct {
	Kind  Kind
	Flags Flags
}

// SyntaxToken wraps a RawToken with the trivia-precedence flags the parse
// stream's lookahead buffer computes: whether any whitespace/comment/
// newline preceded this significant token since the previous one.
type SyntaxToken struct {
	Raw          RawToken
	HadWhitespace bool
	HadNewline    bool
}

// Is reports whether t is exactly kind with no preceding trivia — spec.md
// §3's "equality to a Kind k is kind matches AND not decorated".
func (t SyntaxToken) Is(kind Kind) bool {
	return t.Raw.Kind == kind && !t.HadWhitespace && !t.HadNewline
}

// KindOnly reports whether t's raw kind is kind, ignoring trivia — used by
// callers that only care about classification, not adjacency.
func (t SyntaxToken) KindOnly(kind Kind) bool { return t.Raw.Kind == kind }
