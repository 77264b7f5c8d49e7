package lexer_test

import (
	"testing"

	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

// testReporter collects every diagnostic the lexer reports, mirroring the
// teacher's own lexer test helper.
type testReporter struct {
	reports []string
}

func (r *testReporter) Report(code string, span source.Span, msg string) {
	r.reports = append(r.reports, code+": "+msg)
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.jl", []byte(input))
	file := fs.Get(id)
	rep := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: rep}), rep
}

func collectSignificant(lx *lexer.Lexer) []token.RawToken {
	var out []token.RawToken
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind.IsTrivia() {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func expectKinds(t *testing.T, input string, want []token.Kind) {
	t.Helper()
	lx, rep := makeTestLexer(input)
	got := collectSignificant(lx)
	if len(got) != len(want) {
		t.Fatalf("input %q: expected %d tokens, got %d (%v); reports: %v", input, len(want), len(got), got, rep.reports)
	}
	for i, tok := range got {
		if tok.Kind != want[i] {
			t.Errorf("input %q: token %d: expected %v, got %v", input, i, want[i], tok.Kind)
		}
	}
}

func TestIdentifiers_ASCII(t *testing.T) {
	tests := []string{"foo", "_bar", "__test", "x123", "camelCase", "UPPER"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.Identifier})
		})
	}
}

func TestUnderscore_Single(t *testing.T) {
	// "_" alone is an ordinary identifier at the lexer level; the anonymous-
	// binding placeholder meaning is a parser-level concern.
	expectKinds(t, "_", []token.Kind{token.Identifier})
}

func TestIdentifiers_Unicode(t *testing.T) {
	tests := []string{"δ", "λx", "変数", "café"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.Identifier})
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"if", token.KwIf},
		{"else", token.KwElse},
		{"for", token.KwFor},
		{"while", token.KwWhile},
		{"function", token.KwFunction},
		{"end", token.KwEnd},
		{"return", token.KwReturn},
		{"true", token.KwTrue},
		{"false", token.KwFalse},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectKinds(t, tt.input, []token.Kind{tt.kind})
		})
	}
}

func TestKeywords_CapitalizedAreIdentifiers(t *testing.T) {
	tests := []string{"If", "IF", "End", "Function"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.Identifier})
		})
	}
}

func TestNumbers_Decimal(t *testing.T) {
	tests := []string{"0", "123", "1_000", "999_999_999"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.IntegerLit})
		})
	}
}

func TestNumbers_Hex(t *testing.T) {
	tests := []string{"0x0", "0xF", "0xDEADBEEF", "0xAB_CD"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.HexIntLit})
		})
	}
}

func TestNumbers_Float(t *testing.T) {
	tests := []string{"1.0", "3.14", "0.5", "1.", ".5"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.FloatLit})
		})
	}
}

func TestNumbers_Float32Suffix(t *testing.T) {
	tests := []string{"2.0f0", "1.5f-3", "3.0F0", "2.0f", "1.0F"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			expectKinds(t, in, []token.Kind{token.FloatLit})
		})
	}
}

func TestNumbers_Float32SuffixThenIdentifier(t *testing.T) {
	// "f" followed by identifier-continuation text that isn't a digit run
	// is not a float suffix: it starts a separate identifier.
	expectKinds(t, "2.0fabc", []token.Kind{token.FloatLit, token.Identifier})
}

func TestNumbers_DotDotNotPartOfNumber(t *testing.T) {
	expectKinds(t, "1..10", []token.Kind{token.IntegerLit, token.Op2Dot, token.IntegerLit})
}

func TestNumbers_HexThenIdentifier(t *testing.T) {
	// "0xenomorph" is "0x0e" (valid hex digits only) followed by "nomorph".
	expectKinds(t, "0xenomorph", []token.Kind{token.HexIntLit, token.Identifier})
}

func TestOperators_Single(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"+", token.OpPlus},
		{"-", token.OpMinus},
		{"*", token.OpStar},
		{"/", token.OpSlash},
		{"=", token.OpAssign},
		{"<", token.OpLt},
		{">", token.OpGt},
		{"?", token.OpQuestion},
		{":", token.OpColon},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectKinds(t, tt.input, []token.Kind{tt.kind})
		})
	}
}

func TestOperators_Greedy(t *testing.T) {
	expectKinds(t, "...", []token.Kind{token.Op3Dot})
	expectKinds(t, "..+..", []token.Kind{token.Op2Dot, token.OpPlus, token.Op2Dot})
}

func TestDottedOperator(t *testing.T) {
	lx, _ := makeTestLexer(".+")
	tok := lx.Next()
	if tok.Kind != token.OpPlus {
		t.Fatalf("expected OpPlus, got %v", tok.Kind)
	}
	if !tok.IsDotted {
		t.Fatalf("expected IsDotted on %q", ".+")
	}
}

func TestTrivia_LineComment(t *testing.T) {
	lx, _ := makeTestLexer("# a comment\nfoo")
	tok := lx.Next()
	if tok.Kind != token.LineComment {
		t.Fatalf("expected LineComment, got %v", tok.Kind)
	}
}

func TestTrivia_NestedBlockComment(t *testing.T) {
	lx, rep := makeTestLexer("#= outer #= inner =# still outer =#foo")
	tok := lx.Next()
	if tok.Kind != token.BlockComment {
		t.Fatalf("expected BlockComment, got %v (reports: %v)", tok.Kind, rep.reports)
	}
	next := lx.Next()
	if next.Kind != token.Identifier {
		t.Fatalf("expected Identifier after nested block comment, got %v", next.Kind)
	}
}

func TestString_Simple(t *testing.T) {
	expectKinds(t, `"hello"`, []token.Kind{token.StringOpen, token.StringChunk, token.StringClose})
}

func TestString_Empty(t *testing.T) {
	expectKinds(t, `""`, []token.Kind{token.StringOpen, token.StringClose})
}

func TestString_Unterminated(t *testing.T) {
	lx, rep := makeTestLexer(`"hello`)
	lx.Next() // StringOpen
	lx.Next() // StringChunk
	tok := lx.Next()
	if tok.Kind != token.StringClose || tok.Err != token.EOFChar {
		t.Fatalf("expected synthetic StringClose with EOFChar, got %v/%v", tok.Kind, tok.Err)
	}
	if len(rep.reports) == 0 {
		t.Fatalf("expected a diagnostic report for unterminated string")
	}
}

func TestString_BareInterpolation(t *testing.T) {
	expectKinds(t, `"hi $name!"`, []token.Kind{
		token.StringOpen, token.StringChunk, token.StringInterpDollar,
	})
}

func TestString_ParenInterpolation(t *testing.T) {
	lx, _ := makeTestLexer(`"$(1 + 2)"`)
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.StringOpen, token.StringInterpParen, token.IntegerLit, token.Whitespace, token.OpPlus,
		token.Whitespace, token.IntegerLit, token.StringInterpExit, token.StringClose,
	}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestString_TripleQuoteDetected(t *testing.T) {
	lx, _ := makeTestLexer("\"\"\"abc\"\"\"")
	open := lx.Next()
	if open.Kind != token.StringOpen || open.Len() != 3 {
		t.Fatalf("expected a 3-byte StringOpen, got kind=%v len=%d", open.Kind, open.Len())
	}
}

func TestString_TripleQuoteEscapedDollarIsNotInterpolation(t *testing.T) {
	// "\$" inside a triple-quoted string is a literal "$", not the start of
	// an interpolation entry.
	expectKinds(t, `"""a \$b"""`, []token.Kind{
		token.StringOpen, token.StringChunk, token.StringClose,
	})
}

func TestString_TripleQuoteEscapedBackslash(t *testing.T) {
	// "\\" consumes as one escaped byte pair, so it never masks the
	// delimiter that follows it.
	expectKinds(t, `"""a\\b"""`, []token.Kind{
		token.StringOpen, token.StringChunk, token.StringClose,
	})
}

func TestString_TripleQuoteDollarInterpolationStillWorks(t *testing.T) {
	// an *unescaped* "$" inside a triple-quoted string still introduces
	// interpolation, same as in a plain string.
	expectKinds(t, `"""hi $name!"""`, []token.Kind{
		token.StringOpen, token.StringChunk, token.StringInterpDollar,
	})
}

func TestCharLiteral(t *testing.T) {
	expectKinds(t, "'a'", []token.Kind{token.CharLit})
}

func TestLexer_EOF(t *testing.T) {
	lx, _ := makeTestLexer("x")
	lx.Next()
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
	again := lx.Next()
	if again.Kind != token.EOF {
		t.Fatalf("expected EOF again, got %v", again.Kind)
	}
}

func TestLexer_PeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Start != p2.Start {
		t.Fatalf("Peek should be idempotent, got %v then %v", p1, p2)
	}
	n1 := lx.Next()
	if n1.Start != p1.Start {
		t.Fatalf("Next after Peek should return the same token")
	}
}

func TestJuxtapositionDigits(t *testing.T) {
	expectKinds(t, "2x", []token.Kind{token.IntegerLit, token.Identifier})
}
