package token

// keywords holds the unconditionally-reserved words. Contextual keywords
// (abstract, as, mutable, outer, primitive, type, doc) are deliberately not
// here — they lex as plain Identifier and are reclassified by the parser
// once it knows the surrounding grammar position, per spec.md §4.1.
var keywords = map[string]Kind{
	"baremodule": KwBaremodule,
	"begin":      KwBegin,
	"break":      KwBreak,
	"catch":      KwCatch,
	"const":      KwConst,
	"continue":   KwContinue,
	"do":         KwDo,
	"else":       KwElse,
	"elseif":     KwElseif,
	"end":        KwEnd,
	"export":     KwExport,
	"false":      KwFalse,
	"finally":    KwFinally,
	"for":        KwFor,
	"function":   KwFunction,
	"global":     KwGlobal,
	"if":         KwIf,
	"import":     KwImport,
	"let":        KwLet,
	"local":      KwLocal,
	"macro":      KwMacro,
	"module":     KwModule,
	"quote":      KwQuote,
	"return":     KwReturn,
	"struct":     KwStruct,
	"true":       KwTrue,
	"try":        KwTry,
	"using":      KwUsing,
	"while":      KwWhile,

	"in":    WordIn,
	"isa":   WordIsa,
	"where": WordWhere,
}

// contextualKeywords names the identifiers the parser may reinterpret. The
// lexer never consults this table; it exists so parser code and tests share
// one canonical spelling list instead of repeating string literals.
var contextualKeywords = map[string]Kind{
	"abstract":  CtxAbstract,
	"as":        CtxAs,
	"doc":       CtxDoc,
	"mutable":   CtxMutable,
	"outer":     CtxOuter,
	"primitive": CtxPrimitive,
	"type":      CtxType,
}

// LookupKeyword returns the keyword kind for ident, if ident is reserved.
// Keywords are case-sensitive; only the exact lowercase spelling matches.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// LookupContextualKeyword reports whether ident spells a contextual keyword
// and, if so, which one. The caller (the parser) decides whether the
// surrounding grammar position actually treats it as a keyword.
func LookupContextualKeyword(ident string) (Kind, bool) {
	k, ok := contextualKeywords[ident]
	return k, ok
}
