package parser

import (
	"surge/internal/cst"
	"surge/internal/token"
)

func (p *Parser) parseExprNoAssign() cst.Mark {
	return p.parseExpr(precAssign + 1)
}

// parseArrayLiteral parses a "[...]" literal in any of its shapes: empty,
// comma-separated (vect), space-separated on one line (hcat), ";"/";;"-
// separated rows (vcat / N-dimensional ncat, with the dimension N — the
// longest ";" run — carried as Flags on the node per the
// dim-as-flags-payload convention), or a
// comprehension ("[expr for ...]").
func (p *Parser) parseArrayLiteral() cst.Mark {
	m := p.s.Start()
	p.s.Bump() // [
	if p.atKindOnly(token.RBracket) {
		p.s.Bump()
		p.s.Complete(m, token.NVect, 0)
		return m
	}

	var first cst.Mark
	p.withTupleAssignContext(false, func() {
		first = p.parseExprNoAssign()
	})

	switch {
	case p.atKindOnly(token.KwFor):
		p.parseGeneratorTail(first)
		p.expect(token.RBracket)
		p.s.Complete(m, token.NComprehension, 0)

	case p.atKindOnly(token.Comma):
		p.withTupleAssignContext(false, p.parseVectTail)
		p.expect(token.RBracket)
		p.s.Complete(m, token.NVect, 0)

	case p.atKindOnly(token.RBracket):
		p.s.Bump()
		p.s.Complete(m, token.NVect, 0)

	default:
		var dim int
		p.withTupleAssignContext(false, func() { dim = p.parseCatBody(first) })
		p.expect(token.RBracket)
		switch {
		case dim == 0:
			p.s.Complete(m, token.NHcat, 0)
		case dim == 1:
			p.s.Complete(m, token.NVcat, 0)
		default:
			p.s.Complete(m, token.NNcat, token.Flags(dim))
		}
	}
	return m
}

func (p *Parser) parseVectTail() {
	for p.atKindOnly(token.Comma) {
		p.s.Bump()
		if p.atKindOnly(token.RBracket) {
			break
		}
		p.parseExprNoAssign()
	}
}

// catLevel tracks the in-progress accumulation of sibling elements at one
// dimension of a "[... ; ... ;; ...]" body: start marks where the first of
// its pending siblings began, count how many are pending so far.
type catLevel struct {
	start cst.Mark
	count int
}

// rowKindForLevel names the wrapper kind for a completed run of siblings at
// dimension level (1-based): level 1 ("a row" of space-separated elements)
// gets NRow, every deeper level gets NNrow — there is no distinct kind per
// level beyond that, so levels 2 and up share NNrow.
func rowKindForLevel(level int) token.Kind {
	if level <= 1 {
		return token.NRow
	}
	return token.NNrow
}

// parseCatBody consumes the elements and ";"/";;;.."-run separators that
// follow the already-parsed firstMark inside "[...]", wrapping runs of
// sibling elements into NRow/NNrow nodes level by level as each higher-order
// separator closes them off — a row that never picks up a second element is
// left bare rather than wrapped, matching how a lone vcat/hcat member isn't
// boxed either. Each semicolon run is counted by peeking, then the pending
// levels are closed (wrapped) *before* the separator tokens themselves are
// bumped, so a separator always lands as a direct sibling of the row/group
// nodes it separates rather than getting pulled inside one of them. It
// returns the highest semicolon-run length seen: 0 for a plain hcat
// (space-separated, no semicolons at all), 1 for a vcat, N for an
// N-dimensional ncat.
func (p *Parser) parseCatBody(firstMark cst.Mark) int {
	levels := []catLevel{{start: firstMark, count: 1}}
	maxDim := 0

	closeLevels := func(upTo int) {
		for i := 0; i < upTo; i++ {
			if levels[i].count == 0 {
				continue
			}
			var node cst.Mark
			if levels[i].count > 1 {
				node = p.s.Precede(levels[i].start)
				p.s.Complete(node, rowKindForLevel(i+1), 0)
			} else {
				node = levels[i].start
			}
			levels[i] = catLevel{}
			switch {
			case i+1 >= len(levels):
				levels = append(levels, catLevel{start: node, count: 1})
			case levels[i+1].count == 0:
				levels[i+1] = catLevel{start: node, count: 1}
			default:
				levels[i+1].count++
			}
		}
	}

	for {
		for !p.atKindOnly(token.Semicolon) && !p.atKindOnly(token.RBracket) && !p.atKindOnly(token.EOF) {
			next := p.parseExprNoAssign()
			levels[0].count++
			if levels[0].count == 1 {
				levels[0].start = next
			}
		}
		if !p.atKindOnly(token.Semicolon) {
			break
		}

		k := 0
		for p.s.PeekKind(k) == token.Semicolon {
			k++
		}
		if k > maxDim {
			maxDim = k
		}
		closeLevels(k)
		for i := 0; i < k; i++ {
			p.s.Bump()
		}
		if p.atKindOnly(token.RBracket) || p.atKindOnly(token.EOF) {
			break
		}
	}
	if maxDim > 0 {
		closeLevels(maxDim)
	}
	return maxDim
}

// parseGeneratorTail wraps exprMark and one or more "for lhs in iter [if
// cond]" clauses into an NGenerator node.
func (p *Parser) parseGeneratorTail(exprMark cst.Mark) {
	gm := p.s.Precede(exprMark)
	for p.atKindOnly(token.KwFor) {
		p.s.Bump()
		p.parseForHeader()
		if p.atKindOnly(token.KwIf) {
			p.s.Bump()
			p.parseExpr(precComparison)
		}
		if !p.atKindOnly(token.KwFor) {
			break
		}
	}
	p.s.Complete(gm, token.NGenerator, 0)
}

// parseBraceLiteral parses a standalone "{...}" literal (parametric-type
// argument list used outside of a postfix curly, e.g. inside a where-clause
// bound list).
func (p *Parser) parseBraceLiteral() cst.Mark {
	m := p.s.Start()
	p.s.Bump() // {
	p.withTupleAssignContext(false, func() {
		for !p.atKindOnly(token.RBrace) && !p.atKindOnly(token.EOF) {
			p.parseExprNoAssign()
			if p.atKindOnly(token.Comma) {
				p.s.Bump()
				continue
			}
			break
		}
	})
	p.expect(token.RBrace)
	p.s.Complete(m, token.NCurly, 0)
	return m
}
