package testkit

import (
	"fmt"

	"surge/internal/cst"
	"surge/internal/lexer"
	"surge/internal/literal"
	"surge/internal/source"
	"surge/internal/token"
)

// CheckTriviaRoundTrip verifies that filtering every trivia-flagged event out
// of the built tree's leaves yields exactly the same significant-token
// sequence (by kind and byte range) as re-lexing file directly and dropping
// its trivia tokens. Zero-width tokens are left out of both sequences, since
// the parser inserts zero-width leaves (the implicit "*" in "2x") that the
// lexer never produces. The tree and a from-scratch lex walk must never
// disagree about which bytes are "significant".
func CheckTriviaRoundTrip(file *source.File, root *cst.Node) []Violation {
	var out []Violation

	var fromTree []token.RawToken
	for _, l := range leaves(root) {
		if !l.Raw.Kind.IsTrivia() && l.Raw.Len() > 0 {
			fromTree = append(fromTree, l.Raw)
		}
	}

	var fromLex []token.RawToken
	lx := lexer.New(file, lexer.Options{})
	for {
		raw := lx.Next()
		if raw.Kind == token.EOF {
			break
		}
		if !raw.Kind.IsTrivia() && raw.Len() > 0 {
			fromLex = append(fromLex, raw)
		}
	}

	if len(fromTree) != len(fromLex) {
		out = append(out, Violation{
			Property: "trivia-round-trip",
			Detail:   fmt.Sprintf("tree has %d significant tokens, direct lex has %d", len(fromTree), len(fromLex)),
			Span:     root.Span,
		})
		return out
	}
	for i := range fromTree {
		a, b := fromTree[i], fromLex[i]
		if a.Kind != b.Kind || a.Start != b.Start || a.End != b.End {
			out = append(out, Violation{
				Property: "trivia-round-trip",
				Detail:   fmt.Sprintf("token %d: tree has %s[%d,%d), lex has %s[%d,%d)", i, a.Kind, a.Start, a.End, b.Kind, b.Start, b.End),
				Span:     source.Span{File: file.ID, Start: a.Start, End: a.End},
			})
		}
	}
	return out
}

// CheckStringUnescapeRoundTrip verifies literal.Unescape is the identity on
// raw text that contains no backslash escapes at all — spec.md §8's
// "round-trip for raw strings" property, restricted to escape-free text.
// Text containing any backslash is not checked and yields no violation.
func CheckStringUnescapeRoundTrip(raw string) []Violation {
	var out []Violation
	hasBackslash := false
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' {
			hasBackslash = true
			break
		}
	}
	if hasBackslash {
		return out
	}
	got, err := literal.Unescape(raw)
	if err != nil {
		out = append(out, Violation{Property: "string-round-trip", Detail: fmt.Sprintf("Unescape(%q): %v", raw, err)})
		return out
	}
	if got != raw {
		out = append(out, Violation{Property: "string-round-trip", Detail: fmt.Sprintf("Unescape(%q) = %q, want identity", raw, got)})
	}
	return out
}
