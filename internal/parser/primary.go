package parser

import (
	"surge/internal/cst"
	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/token"
)

// parseExprStatement parses a single statement that starts with an
// expression — which may turn out to be a plain expression, an assignment,
// or (via parseTupleAssignTail) a tuple-destructuring assignment — and, if
// the call it ends in is immediately followed by "do", attaches the do
// block to it.
func (p *Parser) parseExprStatement() {
	var mark cst.Mark
	p.withTupleAssignContext(true, func() {
		mark = p.parseExpr(precNone)
	})
	if p.atKindOnly(token.KwDo) {
		p.parseDoBlock(mark)
	}
}

// parseDoBlock parses the "do a, b ... end" form attached to a preceding
// call. More than one implicit parameter requires langver.FeatureDoBlockMulti
// — older grammar versions only accept a single implicit parameter.
func (p *Parser) parseDoBlock(callMark cst.Mark) {
	m := p.s.Precede(callMark)
	doTok := p.s.Peek(0).Raw
	p.s.Bump() // do
	paramCount := 0
	if !p.atStatementEnd() {
		for {
			p.parseExpr(precAssign + 1)
			paramCount++
			if p.atKindOnly(token.Comma) {
				p.s.Bump()
				continue
			}
			break
		}
	}
	if paramCount > 1 && !p.features.Has(langver.FeatureDoBlockMulti) {
		p.unsupported(p.spanOf(doTok), "do block with multiple parameters", "only a single implicit parameter is accepted")
	}
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NDo, 0)
}

// parsePostfixChain parses one primary expression, then a run of postfix
// operators (call, index, curly, field access, unicode-suffixed
// transpose-like operators), each wrapped around the previous result via
// Precede so the chain builds left-deep.
func (p *Parser) parsePostfixChain() cst.Mark {
	base := p.parsePrimary()
	for {
		switch {
		case p.at(token.LParen):
			base = p.parseCallArgs(base, token.NCall)
		case p.at(token.LBracket):
			base = p.parseCallArgs(base, token.NRef)
		case p.at(token.LBrace):
			base = p.parseCallArgs(base, token.NCurly)
		case p.at(token.OpDot):
			m := p.s.Precede(base)
			p.s.Bump()
			if p.atKindOnly(token.LParen) {
				// a.(expr) dynamic field access
				p.s.Bump()
				p.parseExpr(precNone)
				p.expect(token.RParen)
			} else {
				p.expect(token.Identifier)
			}
			p.s.Complete(m, token.NOpCall, token.FlagDotOp)
			base = m
		default:
			return base
		}
	}
}

// parseCallArgs parses a "(...)"/"[...]"/"{...}" postfix argument list,
// accepting both positional and "name = value" keyword arguments, with a
// trailing ";"-separated keyword section wrapped as NParameters.
func (p *Parser) parseCallArgs(base cst.Mark, kind token.Kind) cst.Mark {
	m := p.s.Precede(base)
	open := p.s.PeekKind(0)
	closeKind := matchingClose(open)
	p.s.Bump() // opening delimiter

	p.withTupleAssignContext(false, func() {
		p.parseArgList(closeKind)
	})

	p.expect(closeKind)
	p.s.Complete(m, kind, 0)
	return m
}

func matchingClose(open token.Kind) token.Kind {
	switch open {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

// parseArgList parses comma-separated arguments up to closeKind, routing
// "name = value" into NKw nodes and a ";"-introduced trailing run into one
// NParameters node, matching Julia's f(positional...; keyword...) shape.
func (p *Parser) parseArgList(closeKind token.Kind) {
	sawSemicolon := false
	for !p.atKindOnly(closeKind) && !p.atKindOnly(token.EOF) {
		if p.atKindOnly(token.Semicolon) {
			sawSemicolon = true
			p.s.Bump()
			p.parseKeywordSection(closeKind)
			continue
		}
		_ = sawSemicolon
		p.parseArg()
		if p.atKindOnly(token.Comma) {
			p.s.Bump()
			continue
		}
		break
	}
}

func (p *Parser) parseKeywordSection(closeKind token.Kind) {
	m := p.s.Start()
	for !p.atKindOnly(closeKind) && !p.atKindOnly(token.EOF) {
		p.parseArg()
		if p.atKindOnly(token.Comma) {
			p.s.Bump()
			continue
		}
		break
	}
	p.s.Complete(m, token.NParameters, 0)
}

// parseArg parses one call/curly/ref argument: "name = value" becomes NKw,
// anything else is a plain expression; a trailing "..." splat (as in
// "xs...") is not consumed here. It returns the argument's mark so a caller (e.g.
// parseParenOrTuple, distinguishing a named tuple from a plain one) can
// inspect what kind it ended up being.
func (p *Parser) parseArg() cst.Mark {
	lhs := p.parseExpr(precAssign + 1)
	if p.atKindOnly(token.OpAssign) {
		m := p.s.Precede(lhs)
		p.s.Bump()
		p.parseExpr(precAssign + 1)
		p.s.Complete(m, token.NKw, 0)
		return m
	}
	return lhs
}

// parsePrimary parses one atomic expression: a literal, identifier, macro
// call, string, parenthesized group, or array/matrix literal.
func (p *Parser) parsePrimary() cst.Mark {
	k := p.s.PeekKind(0)
	switch {
	case k == token.Identifier, k.IsContextualKeyword():
		return p.parseNameAndJuxtaposition()
	case k.IsLiteral(), k == token.KwTrue, k == token.KwFalse:
		return p.parseLiteralAndJuxtaposition()
	case k == token.At:
		return p.parseMacroCall()
	case k == token.LParen:
		return p.parseParenOrTuple()
	case k == token.LBracket:
		return p.parseArrayLiteral()
	case k == token.LBrace:
		return p.parseBraceLiteral()
	case k.IsStringPiece():
		return p.parseStringLiteral()
	default:
		m := p.s.Start()
		tok := p.s.Peek(0).Raw
		p.s.EmitDiagnostic(diag.CodeUnexpectedTok, diag.SeverityError, p.spanOf(tok), "unexpected token "+tok.Kind.String())
		if k != token.EOF {
			p.s.Bump()
		}
		p.s.Complete(m, token.NInvisible, token.FlagError)
		return m
	}
}

func (p *Parser) parseNameAndJuxtaposition() cst.Mark {
	m := p.s.Start()
	p.s.Bump()
	p.s.Complete(m, token.NName, 0)
	return p.maybeJuxtapose(m)
}

func (p *Parser) parseLiteralAndJuxtaposition() cst.Mark {
	m := p.s.Start()
	p.s.Bump()
	p.s.Complete(m, token.NLiteral, 0)
	return p.maybeJuxtapose(m)
}

// maybeJuxtapose detects the "2x" implicit-multiplication form: a literal
// immediately (no intervening trivia) followed by an identifier or opening
// paren is read as that literal times the following unary expression, with
// an invisible '*' token recorded between them so the tree stays lossless
// about what was actually inserted.
func (p *Parser) maybeJuxtapose(lhs cst.Mark) cst.Mark {
	if p.s.KindAt(lhs) != token.NLiteral {
		return lhs
	}
	next := p.s.Peek(0)
	if next.HadWhitespace || next.HadNewline {
		return lhs
	}
	if next.Raw.Kind != token.Identifier && next.Raw.Kind != token.LParen {
		return lhs
	}
	m := p.s.Precede(lhs)
	p.s.BumpInvisible(token.OpStar)
	p.parseUnary()
	p.s.Complete(m, token.NOpCall, token.FlagInvisible)
	return m
}

// parseParenOrTuple parses "(...)", deciding after the fact whether it was
// a single parenthesized expression, a plain tuple, or — once every element
// turns out to be a "name = value" pair and langver.FeatureNamedTuple is
// enabled — a named tuple literal.
func (p *Parser) parseParenOrTuple() cst.Mark {
	m := p.s.Start()
	p.s.Bump() // (
	if p.atKindOnly(token.RParen) {
		p.s.Bump()
		p.s.Complete(m, token.NTuple, 0)
		return m
	}
	var count int
	sawComma := false
	allKw := true
	p.withTupleAssignContext(false, func() {
		for {
			arg := p.parseArg()
			if p.s.KindAt(arg) != token.NKw {
				allKw = false
			}
			count++
			if p.atKindOnly(token.Comma) {
				sawComma = true
				p.s.Bump()
				if p.atKindOnly(token.RParen) {
					break
				}
				continue
			}
			break
		}
	})
	p.expect(token.RParen)
	kind := token.NParen
	if count > 1 || sawComma {
		kind = token.NTuple
		if allKw && p.features.Has(langver.FeatureNamedTuple) {
			kind = token.NNamedTuple
		}
	}
	p.s.Complete(m, kind, 0)
	return m
}
