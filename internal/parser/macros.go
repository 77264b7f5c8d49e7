package parser

import (
	"surge/internal/cst"
	"surge/internal/token"
)

// parseMacroCall parses "@name(args...)" or the parenthesis-free
// "@name arg1 arg2" form, up to the end of the current statement.
func (p *Parser) parseMacroCall() cst.Mark {
	m := p.s.Start()
	p.s.Bump() // @
	if !p.expectMacroName() {
		p.s.Complete(m, token.NMacrocall, token.FlagError)
		return m
	}
	if p.at(token.LParen) {
		p.s.Bump()
		p.withTupleAssignContext(false, func() {
			for !p.atKindOnly(token.RParen) && !p.atKindOnly(token.EOF) {
				p.parseArg()
				if p.atKindOnly(token.Comma) {
					p.s.Bump()
					continue
				}
				break
			}
		})
		p.expect(token.RParen)
	} else {
		for !p.atStatementEnd() && !p.atKindOnly(token.Comma) && !isClosingDelim(p.s.PeekKind(0)) {
			p.parseExpr(precComparison)
		}
	}
	p.s.Complete(m, token.NMacrocall, 0)
	return m
}

func (p *Parser) expectMacroName() bool {
	if p.at(token.Identifier) || p.s.PeekKind(0).IsContextualKeyword() {
		p.s.Bump()
		for p.at(token.OpDot) {
			p.s.Bump()
			p.expect(token.Identifier)
		}
		return true
	}
	p.expect(token.Identifier)
	return false
}

func isClosingDelim(k token.Kind) bool {
	switch k {
	case token.RParen, token.RBracket, token.RBrace:
		return true
	default:
		return false
	}
}
