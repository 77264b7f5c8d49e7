package parser

import (
	"surge/internal/langver"
	"surge/internal/token"
)

// parseDecl handles "global"/"local"/"const" followed by one or more
// comma-separated bindings, each of which may itself be an assignment. A
// "const" binding with no initializer is only accepted under
// langver.FeatureConstNoInit; older grammar versions require every const
// to be assigned where it's declared.
func (p *Parser) parseDecl(kind token.Kind) {
	m := p.s.Start()
	p.s.Bump()
	for {
		startTok := p.s.Peek(0).Raw
		binding := p.parseExpr(precAssign)
		if kind == token.NConst && p.s.KindAt(binding) != token.NAssign && !p.features.Has(langver.FeatureConstNoInit) {
			p.unsupported(p.spanOf(startTok), "const without an initializer", "every const must be assigned where it's declared")
		}
		if p.atKindOnly(token.Comma) {
			p.s.Bump()
			continue
		}
		break
	}
	p.s.Complete(m, kind, 0)
}

// parseImportLike parses "import"/"using" followed by one or more
// comma-separated dotted module paths, each optionally followed by a ":"
// and a comma-separated list of names to bring into scope, e.g.
// "import Base: +, -" or the bare-relative "import ...A".
func (p *Parser) parseImportLike(kind token.Kind) {
	m := p.s.Start()
	p.s.Bump()
	for {
		p.parseImportPath()
		if p.atKindOnly(token.OpColon) {
			p.s.Bump()
			for {
				p.expect(token.Identifier)
				if p.atKindOnly(token.Comma) {
					p.s.Bump()
					continue
				}
				break
			}
		}
		if p.atKindOnly(token.Comma) {
			p.s.Bump()
			continue
		}
		break
	}
	p.s.Complete(m, kind, 0)
}

// parseImportPath consumes a dotted module path, accepting any number of
// leading relative-import dots ("." or "...") before the first component,
// and an optional "as NewName" rename — gated by langver.FeatureImportAs,
// since older grammar versions don't recognize "as" there at all.
func (p *Parser) parseImportPath() {
	m := p.s.Start()
	for p.atKindOnly(token.OpDot) || p.atKindOnly(token.Op3Dot) {
		p.s.Bump()
	}
	p.expect(token.Identifier)
	for p.at(token.OpDot) {
		p.s.Bump()
		p.expect(token.Identifier)
	}
	if p.atContextualKeyword("as") {
		asTok := p.s.Peek(0).Raw
		if !p.features.Has(langver.FeatureImportAs) {
			p.unsupported(p.spanOf(asTok), "import ... as", "renaming an import on the way in")
		}
		p.s.Bump()
		p.expect(token.Identifier)
	}
	p.s.Complete(m, token.NImport, 0)
}

func (p *Parser) parseExport() {
	m := p.s.Start()
	p.s.Bump()
	for {
		p.expect(token.Identifier)
		if p.atKindOnly(token.Comma) {
			p.s.Bump()
			continue
		}
		break
	}
	p.s.Complete(m, token.NExport, 0)
}
