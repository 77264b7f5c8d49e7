package driver

import (
	"strings"

	"surge/internal/cst"
	"surge/internal/literal"
	"surge/internal/source"
	"surge/internal/token"
)

// DecodedLiteral is one number, string, or identifier leaf resolved to a
// concrete value. Kind selects which of Number/Text/Ident is meaningful;
// Dynamic marks a string literal that contains interpolation and therefore
// has no single static value to report.
type DecodedLiteral struct {
	Span    source.Span
	Kind    token.Kind
	Number  literal.Number
	Text    string
	Ident   string
	Dynamic bool
	Err     error
}

// DecodeLiterals walks root and resolves every number, string, and
// identifier it finds to the value internal/literal decodes it to. Neither
// the lexer nor the parser owns this: they only carry a lexeme's byte span
// and syntactic role, so nothing decides what it actually denotes until a
// caller asks — this is that caller.
func DecodeLiterals(file *source.File, root *cst.Node) []DecodedLiteral {
	var out []DecodedLiteral
	walkDecode(file, cst.Element{Node: root}, &out)
	return out
}

func walkDecode(file *source.File, el cst.Element, out *[]DecodedLiteral) {
	if el.Node != nil {
		switch el.Node.Kind {
		case token.NString, token.NStringTriple:
			*out = append(*out, decodeStringNode(file, el.Node))
			return
		}
		for _, c := range el.Node.Children {
			walkDecode(file, c, out)
		}
		return
	}

	leaf := el.Leaf
	span := leaf.Span
	text := func() string { return string(file.Content[span.Start:span.End]) }

	switch leaf.Raw.Kind {
	case token.IntegerLit:
		n, err := literal.DecodeInt(text(), 10)
		*out = append(*out, DecodedLiteral{Span: span, Kind: leaf.Raw.Kind, Number: n, Err: err})
	case token.HexIntLit:
		n, err := literal.DecodeHexInt(text())
		*out = append(*out, DecodedLiteral{Span: span, Kind: leaf.Raw.Kind, Number: n, Err: err})
	case token.OctIntLit:
		n, err := literal.DecodeOctInt(text())
		*out = append(*out, DecodedLiteral{Span: span, Kind: leaf.Raw.Kind, Number: n, Err: err})
	case token.BinIntLit:
		n, err := literal.DecodeBinInt(text())
		*out = append(*out, DecodedLiteral{Span: span, Kind: leaf.Raw.Kind, Number: n, Err: err})
	case token.FloatLit:
		n, err := literal.DecodeFloat(text())
		*out = append(*out, DecodedLiteral{Span: span, Kind: leaf.Raw.Kind, Number: n, Err: err})
	case token.Identifier:
		*out = append(*out, DecodedLiteral{Span: span, Kind: leaf.Raw.Kind, Ident: literal.NormalizeIdent(text())})
	}
}

// decodeStringNode resolves an NString/NStringTriple node to its literal
// text. A triple-quoted string is dedented before its chunks are unescaped,
// same as a plain string's chunk — per internal/literal's own contract, the
// only difference a triple string brings is that dedent pass. A string that
// contains interpolation has no single static value, so it comes back
// Dynamic instead. A command string (FlagRaw) gets UnescapeRaw's
// delimiter-escape-halving rule instead of Unescape's cooked one.
func decodeStringNode(file *source.File, node *cst.Node) DecodedLiteral {
	var raw strings.Builder
	for _, c := range node.Children {
		if c.Leaf == nil {
			continue
		}
		switch c.Leaf.Raw.Kind {
		case token.StringChunk:
			raw.WriteString(string(file.Content[c.Leaf.Raw.Start:c.Leaf.Raw.End]))
		case token.StringInterpDollar, token.StringInterpParen:
			return DecodedLiteral{Span: node.Span, Kind: node.Kind, Dynamic: true}
		}
	}

	content := raw.String()
	if node.Flags.Has(token.FlagRaw) {
		return DecodedLiteral{Span: node.Span, Kind: node.Kind, Text: literal.UnescapeRaw(content, '`')}
	}
	if node.Kind == token.NStringTriple {
		content = literal.Dedent(content)
	}
	text, err := literal.Unescape(content)
	return DecodedLiteral{Span: node.Span, Kind: node.Kind, Text: text, Err: err}
}
