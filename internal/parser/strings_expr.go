package parser

import (
	"strings"

	"surge/internal/cst"
	"surge/internal/token"
)

// parseStringLiteral folds one string/command literal's piece-token stream
// (StringOpen, StringChunk*, interpolations, StringClose) into a single
// NString (or NStringTriple, for the dedenting triple-quoted form) node,
// recursing into parseExpr for each "$(...)" interpolation and into
// parseBareInterpRef for the bare "$name" form. A command string (delimited
// by "`"/"```" instead of "\""/"\"\"\"") gets FlagRaw on its node so
// internal/driver decodes its chunks with UnescapeRaw's delimiter-escape
// rule instead of Unescape's cooked one, per spec.md §4.2 — the lexer scans
// both flavors through the same piece-token stream, so the open delimiter's
// own byte is the only place left that still distinguishes them.
func (p *Parser) parseStringLiteral() cst.Mark {
	m := p.s.Start()
	open := p.s.Bump() // StringOpen
	kind := token.NString
	if open.Len() == 3 {
		kind = token.NStringTriple
	}
	flags := token.Flags(0)
	if strings.HasPrefix(p.s.PeekBehindStr(0), "`") {
		flags |= token.FlagRaw
	}

	for {
		switch p.s.PeekKind(0) {
		case token.StringChunk:
			p.s.Bump()
		case token.StringInterpDollar:
			p.s.Bump()
			p.parseBareInterpRef()
			p.s.ExitBareInterp()
		case token.StringInterpParen:
			p.s.Bump()
			p.parseExpr(precNone)
			p.expect(token.StringInterpExit)
		case token.StringClose:
			p.s.Bump()
			p.s.Complete(m, kind, flags)
			return m
		default:
			// EOF or something the lexer could not keep tokenizing as a
			// string piece: stop here rather than loop forever.
			p.s.Complete(m, kind, flags|token.FlagError)
			return m
		}
	}
}

// parseBareInterpRef parses the restricted expression a bare "$name"
// interpolation accepts: a name followed by any number of "."/"[...]"
// postfix steps, with no operators.
func (p *Parser) parseBareInterpRef() {
	p.expect(token.Identifier)
	for {
		switch {
		case p.at(token.OpDot):
			p.s.Bump()
			p.expect(token.Identifier)
		case p.at(token.LBracket):
			p.s.Bump()
			p.parseExprNoAssign()
			p.expect(token.RBracket)
		default:
			return
		}
	}
}
