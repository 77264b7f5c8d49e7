// Package parser is a recursive-descent client over internal/cst: it knows
// Julia-like grammar, the stream and tree builder know nothing about it.
// Every production follows the same discipline — Start a node, consume
// tokens and/or recurse, Complete it — and leans on cst.Stream.Precede for
// left-deep postfix chains (calls, indexing, field access) instead of
// predicting chain depth with extra lookahead.
package parser

import (
	"surge/internal/cst"
	"surge/internal/diag"
	"surge/internal/langver"
	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

// Parser drives a cst.Stream according to Julia-like surface grammar.
type Parser struct {
	file     source.FileID
	s        *cst.Stream
	features langver.Set

	// recoveryDepth guards resyncTop against being re-entered while it is
	// itself trying to resynchronize, avoiding runaway recursion on
	// pathological input.
	recoveryDepth int

	// inTupleAssignContext is true only while parsing a bare statement-level
	// expression, so a top-level comma run like "a, b = f()" is read as
	// tuple-destructuring assignment while a comma inside call arguments or
	// an array literal is not.
	inTupleAssignContext bool
}

// withTupleAssignContext runs fn with inTupleAssignContext temporarily set
// to enabled, restoring the previous value afterward.
func (p *Parser) withTupleAssignContext(enabled bool, fn func()) {
	save := p.inTupleAssignContext
	p.inTupleAssignContext = enabled
	fn()
	p.inTupleAssignContext = save
}

// New creates a Parser over a freshly constructed lexer for file, gated by
// the latest known grammar version's feature set.
func New(file *source.File, diags *diag.Bag) *Parser {
	return NewWithFeatures(file, diags, langver.Default())
}

// NewWithFeatures creates a Parser that additionally gates optional grammar
// constructs (try/else, const-without-initializer, import-as renaming,
// multi-parameter do blocks, named-tuple literals) by features.
func NewWithFeatures(file *source.File, diags *diag.Bag, features langver.Set) *Parser {
	lx := lexer.New(file, lexer.Options{})
	return &Parser{file: file.ID, s: cst.New(lx, file.ID, diags), features: features}
}

// unsupported reports that a construct just parsed at span requires a
// feature not enabled in p.features. The node is still completed normally
// — an unsupported-feature diagnostic doesn't abandon the parse the way a
// syntax error might, since the grammar itself is unambiguous.
func (p *Parser) unsupported(span source.Span, feature, msg string) {
	p.s.EmitDiagnostic(diag.CodeUnsupportedFeature, diag.SeverityError, span,
		feature+" requires a newer grammar version: "+msg)
}

// ParseFile parses an entire file as a top-level block and folds the event
// buffer into a tree.
func (p *Parser) ParseFile() *cst.Node {
	m := p.s.Start()
	p.parseStatementsUntil(token.EOF)
	p.s.BumpTrivia() // trivia between the last token and EOF
	p.s.Complete(m, token.NBlock, 0)
	return cst.Build(p.file, p.s.Buffer())
}

// parseStatementsUntil parses statements, skipping stray separators, until
// the current token is stop (not consumed) or EOF.
func (p *Parser) parseStatementsUntil(stop token.Kind) {
	for {
		k := p.s.PeekKind(0)
		if k == token.EOF || k == stop {
			return
		}
		if k == token.Semicolon {
			p.s.Bump()
			continue
		}
		p.parseStatement()
	}
}

func (p *Parser) at(kind token.Kind) bool { return p.s.Peek(0).Is(kind) }

func (p *Parser) atKindOnly(kind token.Kind) bool { return p.s.PeekKind(0) == kind }

// atContextualKeyword reports whether the current token is an Identifier
// spelling the named contextual keyword (e.g. "as", "mutable") — the lexer
// never reclassifies these itself, so the parser must check spelling
// directly rather than comparing against a dedicated Kind.
func (p *Parser) atContextualKeyword(name string) bool {
	if _, ok := token.LookupContextualKeyword(name); !ok {
		return false
	}
	return p.atKindOnly(token.Identifier) && p.s.PeekStr(0) == name
}

// expect bumps the current token if it matches kind, else reports a
// diagnostic and returns a zero-width error token at the current position
// without consuming anything — the classic error-tolerant-parser shape.
func (p *Parser) expect(kind token.Kind) token.RawToken {
	if p.atKindOnly(kind) {
		return p.s.Bump()
	}
	tok := p.s.Peek(0).Raw
	p.s.EmitDiagnostic(diag.CodeExpectedTok, diag.SeverityError, p.spanOf(tok),
		"expected "+kind.String()+", found "+tok.Kind.String())
	return token.RawToken{Kind: token.Error, Start: tok.Start, End: tok.Start}
}

func (p *Parser) spanOf(t token.RawToken) source.Span { return t.Span(p.file) }

// resyncTop skips tokens until it finds one of the given sentinel kinds (or
// EOF), to recover from a malformed top-level construct. Mirrors the
// teacher's resyncTop recovery strategy: it never throws away more than it
// has to, and it always makes forward progress.
func (p *Parser) resyncTop(sentinels ...token.Kind) {
	p.recoveryDepth++
	defer func() { p.recoveryDepth-- }()
	if p.recoveryDepth > 64 {
		p.s.Bump()
		return
	}
	for {
		k := p.s.PeekKind(0)
		if k == token.EOF {
			return
		}
		for _, s := range sentinels {
			if k == s {
				return
			}
		}
		p.s.Bump()
	}
}

var blockEnders = map[token.Kind]bool{
	token.KwEnd: true, token.KwElse: true, token.KwElseif: true,
	token.KwCatch: true, token.KwFinally: true,
}

func isBlockEnder(k token.Kind) bool { return blockEnders[k] }
