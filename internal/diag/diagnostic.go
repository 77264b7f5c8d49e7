package diag

import "surge/internal/source"

// Diagnostic is one reported problem, anchored to a byte span so diagfmt
// can render source context around it.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Span     source.Span
	Message  string
}

// New constructs a Diagnostic.
func New(severity Severity, code Code, span source.Span, message string) Diagnostic {
	return Diagnostic{Severity: severity, Code: code, Span: span, Message: message}
}
