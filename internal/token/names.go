package token

var kindNames = map[Kind]string{
	Nothing:   "Nothing",
	EOF:       "EOF",
	Error:     "Error",
	Tombstone: "Tombstone",

	IntegerLit:      "IntegerLit",
	HexIntLit:       "HexIntLit",
	OctIntLit:       "OctIntLit",
	BinIntLit:       "BinIntLit",
	FloatLit:        "FloatLit",
	CharLit:         "CharLit",
	StringLit:       "StringLit",
	StringTripleLit: "StringTripleLit",
	CmdLit:          "CmdLit",
	CmdTripleLit:    "CmdTripleLit",

	Identifier:      "Identifier",
	MacroIdentifier: "MacroIdentifier",

	KwBaremodule: "baremodule",
	KwBegin:      "begin",
	KwBreak:      "break",
	KwCatch:      "catch",
	KwConst:      "const",
	KwContinue:   "continue",
	KwDo:         "do",
	KwElse:       "else",
	KwElseif:     "elseif",
	KwEnd:        "end",
	KwExport:     "export",
	KwFalse:      "false",
	KwFinally:    "finally",
	KwFor:        "for",
	KwFunction:   "function",
	KwGlobal:     "global",
	KwIf:         "if",
	KwImport:     "import",
	KwLet:        "let",
	KwLocal:      "local",
	KwMacro:      "macro",
	KwModule:     "module",
	KwQuote:      "quote",
	KwReturn:     "return",
	KwStruct:     "struct",
	KwTrue:       "true",
	KwTry:        "try",
	KwUsing:      "using",
	KwWhile:      "while",

	CtxAbstract:   "abstract",
	CtxAs:         "as",
	CtxDoc:        "doc",
	CtxMutable:    "mutable",
	CtxOuter:      "outer",
	CtxPrimitive:  "primitive",
	CtxType:       "type",
	CtxVarargDots: "...",

	WordIn:    "in",
	WordIsa:   "isa",
	WordWhere: "where",

	OpAssign:    "=",
	OpPlus:      "+",
	OpMinus:     "-",
	OpStar:      "*",
	OpSlash:     "/",
	OpSlash2:    "//",
	OpBackslash: "\\",
	OpCaret:     "^",
	OpPercent:   "%",
	OpAmp:       "&",
	OpPipe:      "|",
	OpTilde:     "~",
	OpBang:      "!",
	OpLt:        "<",
	OpGt:        ">",
	OpLtEq:      "<=",
	OpGtEq:      ">=",
	OpEqEq:      "==",
	OpNotEq:     "!=",
	OpEgal:      "===",
	OpNotEgal:   "!==",
	OpLAnd:      "&&",
	OpLOr:       "||",
	OpColon:     ":",
	Op2Colon:    "::",
	OpQuestion:  "?",
	OpArrow:     "->",
	OpLeftArrow: "<-",
	OpPipeArrow: "|>",
	OpApprox:    "≈",
	OpLtLt:      "<<",
	OpGtGt:      ">>",
	OpColonEq:   ":=",
	OpPlusEq:    "+=",
	OpMinusEq:   "-=",
	OpStarEq:    "*=",
	OpSlashEq:   "/=",
	OpCaretEq:   "^=",
	OpPercentEq: "%=",
	OpAmpEq:     "&=",
	OpPipeEq:    "|=",
	OpDot:       ".",
	Op2Dot:      "..",
	Op3Dot:      "...",
	InvalidOp:   "<invalid-op>",

	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	LBrace:    "{",
	RBrace:    "}",
	Comma:     ",",
	Semicolon: ";",
	At:        "@",
	Backtick:  "`",

	Whitespace:   "Whitespace",
	NewlineWs:    "NewlineWs",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",

	StringOpen:         "StringOpen",
	StringChunk:         "StringChunk",
	StringInterpDollar:  "StringInterpDollar",
	StringInterpParen:   "StringInterpParen",
	StringInterpExit:    "StringInterpExit",
	StringClose:         "StringClose",

	NBlock:         "block",
	NCall:          "call",
	NCallInfix:     "call-i",
	NComparison:    "comparison",
	NTuple:         "tuple",
	NNamedTuple:    "namedtuple",
	NVect:          "vect",
	NHcat:          "hcat",
	NVcat:          "vcat",
	NNcat:          "ncat",
	NNrow:          "nrow",
	NRow:           "row",
	NGenerator:     "generator",
	NComprehension: "comprehension",
	NFlatten:       "flatten",
	NCurly:         "curly",
	NRef:           "ref",
	NMacrocall:     "macrocall",
	NString:        "string",
	NStringTriple:  "string-triple",
	NQuote:         "quote",
	NIf:            "if",
	NElseif:        "elseif",
	NFor:           "for",
	NWhile:         "while",
	NLet:           "let",
	NTry:           "try",
	NFunction:      "function",
	NMacro:         "macro",
	NStruct:        "struct",
	NAbstract:      "abstract",
	NPrimitive:     "primitive",
	NModule:        "module",
	NImport:        "import",
	NUsing:         "using",
	NExport:        "export",
	NReturn:        "return",
	NBreak:         "break",
	NContinue:      "continue",
	NGlobal:        "global",
	NLocal:         "local",
	NConst:         "const",
	NDo:            "do",
	NWhere:         "where",
	NParameters:    "parameters",
	NKw:            "kw",
	NAssign:        "=",
	NOpCall:        "call",
	NInvisible:     "invisible",
	NName:          "name",
	NLiteral:       "literal",
	NTernary:       "if",
	NParen:         "paren",
}
