package parser

import (
	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/token"
)

// parseStatement dispatches on the current token's kind to the production
// for one top-level-or-block statement, then falls back to an expression
// statement (which itself may turn out to be an assignment).
func (p *Parser) parseStatement() {
	switch p.s.PeekKind(0) {
	case token.KwIf:
		p.parseIf()
	case token.KwFor:
		p.parseFor()
	case token.KwWhile:
		p.parseWhile()
	case token.KwFunction:
		p.parseFunction()
	case token.KwMacro:
		p.parseMacroDef()
	case token.KwStruct:
		p.parseStruct()
	case token.KwModule, token.KwBaremodule:
		p.parseModule()
	case token.KwLet:
		p.parseLet()
	case token.KwTry:
		p.parseTry()
	case token.KwQuote:
		p.parseQuote()
	case token.KwReturn:
		p.parseReturn()
	case token.KwBreak:
		p.wrapKeywordLeaf(token.NBreak)
	case token.KwContinue:
		p.wrapKeywordLeaf(token.NContinue)
	case token.KwGlobal:
		p.parseDecl(token.NGlobal)
	case token.KwLocal:
		p.parseDecl(token.NLocal)
	case token.KwConst:
		p.parseDecl(token.NConst)
	case token.KwImport:
		p.parseImportLike(token.NImport)
	case token.KwUsing:
		p.parseImportLike(token.NUsing)
	case token.KwExport:
		p.parseExport()
	default:
		p.parseExprStatement()
	}
}

func (p *Parser) wrapKeywordLeaf(kind token.Kind) {
	m := p.s.Start()
	p.s.Bump()
	p.s.Complete(m, kind, 0)
}

// parseBody parses a block's statements up to, but not including, the next
// block-ending keyword (end, else, elseif, catch, finally) or EOF, wrapped
// together under an NBlock. The caller consumes the keyword that follows and
// reports a missing "end" itself, so a malformed block still yields a
// well-formed NBlock rather than consuming the rest of the file.
func (p *Parser) parseBody() {
	m := p.s.Start()
	for {
		k := p.s.PeekKind(0)
		if k == token.EOF || isBlockEnder(k) {
			break
		}
		if k == token.Semicolon {
			p.s.Bump()
			continue
		}
		p.parseStatement()
	}
	p.s.Complete(m, token.NBlock, 0)
}

func (p *Parser) parseIf() {
	m := p.s.Start()
	p.s.Bump() // if
	p.parseExpr(precNone)
	p.parseBody()
	for p.atKindOnly(token.KwElseif) {
		sub := p.s.Start()
		p.s.Bump()
		p.parseExpr(precNone)
		p.parseBody()
		p.s.Complete(sub, token.NElseif, 0)
	}
	if p.atKindOnly(token.KwElse) {
		p.s.Bump()
		p.parseBody()
	}
	if p.atKindOnly(token.KwEnd) {
		p.s.Bump()
	} else {
		p.s.EmitDiagnostic(diag.CodeUnclosedDelim, diag.SeverityError, p.spanOf(p.s.Peek(0).Raw), "expected end to close if")
	}
	p.s.Complete(m, token.NIf, 0)
}

func (p *Parser) parseFor() {
	m := p.s.Start()
	p.s.Bump() // for
	p.parseForHeader()
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NFor, 0)
}

// parseForHeader parses one or more comma-separated "lhs in iter" clauses.
func (p *Parser) parseForHeader() {
	for {
		p.parseExpr(precComparison)
		if p.atKindOnly(token.Comma) {
			p.s.Bump()
			continue
		}
		break
	}
}

func (p *Parser) parseWhile() {
	m := p.s.Start()
	p.s.Bump()
	p.parseExpr(precNone)
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NWhile, 0)
}

func (p *Parser) parseLet() {
	m := p.s.Start()
	p.s.Bump()
	if !p.atKindOnly(token.Semicolon) && !p.atKindOnly(token.KwEnd) {
		for {
			p.parseExpr(precAssign + 1)
			if p.atKindOnly(token.Comma) {
				p.s.Bump()
				continue
			}
			break
		}
	}
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NLet, 0)
}

func (p *Parser) parseTry() {
	m := p.s.Start()
	p.s.Bump()
	p.parseBody()
	if p.atKindOnly(token.KwCatch) {
		p.s.Bump()
		if !p.atKindOnly(token.Semicolon) && !p.s.Peek(0).HadNewline && !p.atKindOnly(token.KwEnd) {
			p.parseExpr(precComparison)
		}
		p.parseBody()
	}
	if p.atKindOnly(token.KwElse) {
		elseTok := p.s.Peek(0).Raw
		if !p.features.Has(langver.FeatureTryElse) {
			p.unsupported(p.spanOf(elseTok), "try/else", "an else clause running only when no exception was raised")
		}
		p.s.Bump()
		p.parseBody()
	}
	if p.atKindOnly(token.KwFinally) {
		p.s.Bump()
		p.parseBody()
	}
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NTry, 0)
}

func (p *Parser) parseQuote() {
	m := p.s.Start()
	p.s.Bump()
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NQuote, 0)
}

func (p *Parser) parseReturn() {
	m := p.s.Start()
	p.s.Bump()
	if !p.atStatementEnd() {
		p.parseExpr(precNone)
	}
	p.s.Complete(m, token.NReturn, 0)
}

func (p *Parser) atStatementEnd() bool {
	k := p.s.PeekKind(0)
	return k == token.Semicolon || k == token.EOF || isBlockEnder(k) || p.s.Peek(0).HadNewline
}

func (p *Parser) parseFunction() {
	m := p.s.Start()
	p.s.Bump() // function
	p.parseExpr(precDot + 1) // name, possibly dotted/parametric, plus call signature
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NFunction, 0)
}

func (p *Parser) parseMacroDef() {
	m := p.s.Start()
	p.s.Bump()
	p.parseExpr(precDot + 1)
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NMacro, 0)
}

func (p *Parser) parseStruct() {
	m := p.s.Start()
	p.s.Bump()
	p.parseExpr(precComparison)
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, token.NStruct, 0)
}

func (p *Parser) parseModule() {
	m := p.s.Start()
	kind := token.NModule
	p.s.Bump()
	p.expect(token.Identifier)
	p.parseBody()
	p.expect(token.KwEnd)
	p.s.Complete(m, kind, 0)
}
