package parser

import (
	"surge/internal/cst"
	"surge/internal/token"
)

// parseExpr parses one expression, handling binary operators down to
// minPrec and the ternary/assignment forms that sit below the ordinary
// operator-precedence table.
func (p *Parser) parseExpr(minPrec precLevel) cst.Mark {
	lhs := p.parseUnary()
	lhs = p.parseBinaryRHS(lhs, minPrec)
	if minPrec <= precTernary && p.atKindOnly(token.OpQuestion) {
		lhs = p.parseTernaryTail(lhs)
		lhs = p.parseBinaryRHS(lhs, minPrec)
	}
	if minPrec <= precAssign && p.atKindOnly(token.Comma) && p.inTupleAssignContext {
		lhs = p.parseTupleAssignTail(lhs)
	}
	return lhs
}

func (p *Parser) parseTernaryTail(condMark cst.Mark) cst.Mark {
	m := p.s.Precede(condMark)
	p.s.Bump() // '?'
	p.parseExpr(precTernary + 1)
	p.expect(token.OpColon)
	p.parseExpr(precTernary)
	p.s.Complete(m, token.NTernary, 0)
	return m
}

// parseBinaryRHS repeatedly consumes binary operators at or above minPrec,
// folding the left-hand side in via Precede so the tree nests correctly
// without having predicted operator count in advance. Chainable comparisons
// (a < b < c) collapse into one NComparison rather than nesting binary
// nodes, per spec.md's comparison-chain handling.
func (p *Parser) parseBinaryRHS(lhs cst.Mark, minPrec precLevel) cst.Mark {
	for {
		k := p.s.PeekKind(0)
		info, ok := lookupBinaryOp(k)
		if !ok || info.level < minPrec {
			return lhs
		}

		if info.chainable {
			lhs = p.parseComparisonChain(lhs, info.level)
			continue
		}

		opTok := p.s.Peek(0).Raw
		wrapperKind := token.NOpCall
		if isAssignOp(k) {
			wrapperKind = token.NAssign
		}
		m := p.s.Precede(lhs)
		p.s.Bump()
		nextMin := info.level
		if !info.rightAssoc {
			nextMin++
		}
		p.parseExpr(nextMin)
		p.s.Complete(m, wrapperKind, flagsForOp(opTok))
		lhs = m
	}
}

// parseComparisonChain consumes one or more chainable comparison operators
// at exactly level, wrapping the whole run (not just a pairwise binary) in
// one NComparison node: "a < b < c" keeps all three operands and both
// operators as direct children, rather than nesting "(a<b)<c".
func (p *Parser) parseComparisonChain(lhs cst.Mark, level precLevel) cst.Mark {
	m := p.s.Precede(lhs)
	count := 0
	for {
		info, ok := lookupBinaryOp(p.s.PeekKind(0))
		if !ok || !info.chainable || info.level != level {
			break
		}
		p.s.Bump()
		p.parseExpr(level + 1)
		count++
	}
	if count == 0 {
		p.s.Abandon(m)
		return lhs
	}
	p.s.Complete(m, token.NComparison, 0)
	return m
}

func isAssignOp(k token.Kind) bool {
	switch k {
	case token.OpAssign, token.OpColonEq, token.OpPlusEq, token.OpMinusEq, token.OpStarEq,
		token.OpSlashEq, token.OpCaretEq, token.OpPercentEq, token.OpAmpEq, token.OpPipeEq:
		return true
	default:
		return false
	}
}

func flagsForOp(t token.RawToken) token.Flags {
	var f token.Flags
	if t.IsDotted {
		f |= token.FlagDotOp
	}
	if t.IsSuffixed {
		f |= token.FlagSuffixed
	}
	return f
}

// parseUnary handles a prefix unary operator or falls through to a postfix
// expression.
func (p *Parser) parseUnary() cst.Mark {
	if isUnaryOp(p.s.PeekKind(0)) {
		m := p.s.Start()
		opTok := p.s.Peek(0).Raw
		p.s.Bump()
		p.parseUnary()
		p.s.Complete(m, token.NOpCall, flagsForOp(opTok))
		return m
	}
	return p.parsePostfixChain()
}

// parseTupleAssignTail handles "a, b = f()"-style tuple destructuring: once
// a comma follows a would-be assignment target at statement level, the
// whole comma-separated list (already parsed element-by-element by the
// caller loop) is wrapped as an NTuple standing in as the assignment's LHS.
// inTupleAssignContext gates this so ordinary comma-separated call
// arguments never trigger it.
func (p *Parser) parseTupleAssignTail(first cst.Mark) cst.Mark {
	m := p.s.Precede(first)
	for p.atKindOnly(token.Comma) {
		p.s.Bump()
		if p.atKindOnly(token.OpAssign) {
			break
		}
		p.parseExpr(precAssign + 1)
	}
	p.s.Complete(m, token.NTuple, 0)
	if p.atKindOnly(token.OpAssign) {
		assign := p.s.Precede(m)
		p.s.Bump()
		p.parseExpr(precAssign)
		p.s.Complete(assign, token.NAssign, 0)
		return assign
	}
	return m
}
