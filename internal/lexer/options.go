package lexer

import "surge/internal/source"

// Reporter is the thin callback the lexer uses to surface lex-time errors
// as they're produced, before the token even reaches the parse stream. The
// lexer reports each error here and also attaches it to the offending
// RawToken's Err field; the hook mirrors the teacher's lexer/Options.
type Reporter interface {
	Report(code string, span source.Span, msg string)
}

// Options configures a Lexer.
type Options struct {
	Reporter Reporter
}

func (lx *Lexer) report(code string, start, end uint32, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, source.Span{File: lx.file.ID, Start: start, End: end}, msg)
	}
}
