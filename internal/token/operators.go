package token

// operatorEntry pairs an operator's literal spelling with its kind. The
// table is consulted longest-spelling-first so that e.g. "<=" is not
// mistakenly split into "<" followed by "=".
type operatorEntry struct {
	text string
	kind Kind
}

// operatorTable is the reverse (kind -> text) map's forward form, sorted by
// descending spelling length by sortedOperators below. Longest match over
// this table is how scanOperatorOrPunct (package lexer) classifies a run of
// operator bytes, per spec.md §4.1 "longest-match over the operator table".
var operatorTable = []operatorEntry{
	{"===", OpEgal},
	{"!==", OpNotEgal},
	{"...", Op3Dot},
	{"->", OpArrow},
	{"<-", OpLeftArrow},
	{"|>", OpPipeArrow},
	{"<<", OpLtLt},
	{">>", OpGtGt},
	{":=", OpColonEq},
	{"+=", OpPlusEq},
	{"-=", OpMinusEq},
	{"*=", OpStarEq},
	{"/=", OpSlashEq},
	{"^=", OpCaretEq},
	{"%=", OpPercentEq},
	{"&=", OpAmpEq},
	{"|=", OpPipeEq},
	{"==", OpEqEq},
	{"!=", OpNotEq},
	{"<=", OpLtEq},
	{">=", OpGtEq},
	{"&&", OpLAnd},
	{"||", OpLOr},
	{"::", Op2Colon},
	{"..", Op2Dot},
	{"//", OpSlash2},
	{"=", OpAssign},
	{"+", OpPlus},
	{"-", OpMinus},
	{"*", OpStar},
	{"/", OpSlash},
	{"\\", OpBackslash},
	{"^", OpCaret},
	{"%", OpPercent},
	{"&", OpAmp},
	{"|", OpPipe},
	{"~", OpTilde},
	{"!", OpBang},
	{"<", OpLt},
	{">", OpGt},
	{":", OpColon},
	{"?", OpQuestion},
	{".", OpDot},
	{"≈", OpApprox},
}

// sortedOperators is operatorTable ordered longest-spelling-first so a
// linear scan finds the longest match without a trie.
var sortedOperators = func() []operatorEntry {
	out := make([]operatorEntry, len(operatorTable))
	copy(out, operatorTable)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && len(out[j].text) > len(out[j-1].text); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}()

// operatorText is the reverse map, built once at init from operatorTable —
// the "operator-to-text reverse map" spec.md §9 calls process-wide read-only
// global state.
var operatorText = func() map[Kind]string {
	m := make(map[Kind]string, len(operatorTable))
	for _, e := range operatorTable {
		m[e.kind] = e.text
	}
	return m
}()

// OperatorText returns the canonical spelling of an operator kind, or ""
// if k is not an operator kind.
func OperatorText(k Kind) string { return operatorText[k] }

// LongestOperatorMatch returns the longest operator spelling from the table
// that is a prefix of s, and its kind. ok is false if no operator in the
// table prefixes s at all.
func LongestOperatorMatch(s string) (text string, kind Kind, ok bool) {
	for _, e := range sortedOperators {
		if len(e.text) <= len(s) && s[:len(e.text)] == e.text {
			return e.text, e.kind, true
		}
	}
	return "", InvalidOp, false
}

// IsBinaryWordOperator reports whether ident spells a word operator (in,
// isa, where) used infix, e.g. "x in xs", "x isa T", "T where {S}".
func IsBinaryWordOperator(ident string) (Kind, bool) {
	switch ident {
	case "in":
		return WordIn, true
	case "isa":
		return WordIsa, true
	case "where":
		return WordWhere, true
	default:
		return Nothing, false
	}
}
