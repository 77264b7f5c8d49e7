package parsecache

import (
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// ToCachedTokens snapshots a slice of lexer output into its cache-stable
// form.
func ToCachedTokens(toks []token.RawToken) []CachedToken {
	out := make([]CachedToken, len(toks))
	for i, t := range toks {
		out[i] = CachedToken{
			Kind:     uint16(t.Kind),
			Start:    t.Start,
			End:      t.End,
			IsDotted: t.IsDotted,
			Err:      uint8(t.Err),
		}
	}
	return out
}

// ToRawTokens reconstructs RawTokens from their cached form.
func ToRawTokens(cached []CachedToken) []token.RawToken {
	out := make([]token.RawToken, len(cached))
	for i, c := range cached {
		out[i] = token.RawToken{
			Kind:     token.Kind(c.Kind),
			Start:    c.Start,
			End:      c.End,
			IsDotted: c.IsDotted,
			Err:      token.ErrorCode(c.Err),
		}
	}
	return out
}

// ToCachedDiagnostics snapshots a Bag's sorted diagnostics into their
// cache-stable form, dropping the source.FileID since a cache entry is
// already scoped to one file by its content hash.
func ToCachedDiagnostics(bag *diag.Bag) []CachedDiagnostic {
	sorted := bag.Sorted()
	out := make([]CachedDiagnostic, len(sorted))
	for i, d := range sorted {
		out[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     string(d.Code),
			Start:    d.Span.Start,
			End:      d.Span.End,
			Message:  d.Message,
		}
	}
	return out
}

// ToDiagnostics reconstructs Diagnostics from their cached form, re-anchoring
// each span's spans against file.
func ToDiagnostics(cached []CachedDiagnostic, file source.FileID) []diag.Diagnostic {
	out := make([]diag.Diagnostic, len(cached))
	for i, c := range cached {
		out[i] = diag.Diagnostic{
			Severity: diag.Severity(c.Severity),
			Code:     diag.Code(c.Code),
			Span:     source.Span{File: file, Start: c.Start, End: c.End},
			Message:  c.Message,
		}
	}
	return out
}
