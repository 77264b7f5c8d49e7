// Package literal decodes the raw lexemes the lexer delimits into concrete
// values: numbers at their narrowest exact width, unescaped string text,
// dedented triple-quoted strings, and NFC-normalized identifiers. None of
// this is the lexer's concern — it only carries byte spans and a literal
// Kind; deciding what a lexeme actually denotes happens here, once, after
// the token has already been placed in the tree.
package literal

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// NumberKind is the narrowest representation a decoded numeric literal fit
// into.
type NumberKind uint8

const (
	KindInt NumberKind = iota
	KindInt64
	KindInt128 // represented as *big.Int; Go has no native int128
	KindBigInt
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUint128 // represented as *big.Int
	KindBigUint // represented as *big.Int
	KindFloat32
	KindFloat64
	KindBigFloat
)

// Number is a decoded numeric literal. Exactly one of the typed fields is
// meaningful, selected by Kind. KindInt128/KindBigInt and
// KindUint128/KindBigUint both carry their value in BigInt — Go has no
// native 128-bit integer type, and an arbitrary-precision one needs big.Int
// regardless, so the two wide tiers share a field and are told apart by Kind
// alone.
type Number struct {
	Kind     NumberKind
	Int      int
	Int64    int64
	BigInt   *big.Int
	Uint8    uint8
	Uint16   uint16
	Uint32   uint32
	Uint64   uint64
	Float32  float32
	Float64  float64
	BigFloat *big.Float
}

// DecodeInt decodes a decimal integer lexeme to the narrowest width that
// holds it exactly, per spec.md §4.2's signed width ladder: machine int,
// then int64, then (conceptually) int128, then arbitrary precision.
// Underscore digit separators are stripped first. Hex/octal/binary lexemes
// use DecodeHexInt/DecodeOctInt/DecodeBinInt instead — spec.md §4.2 gives
// them a distinct, unsigned decode rule.
func DecodeInt(lexeme string, radix int) (Number, error) {
	clean := stripRadixPrefix(stripUnderscores(lexeme), radix)

	if n, err := strconv.ParseInt(clean, radix, strconv.IntSize); err == nil {
		return Number{Kind: KindInt, Int: int(n)}, nil
	}
	if n, err := strconv.ParseInt(clean, radix, 64); err == nil {
		return Number{Kind: KindInt64, Int64: n}, nil
	}
	bi, ok := new(big.Int).SetString(clean, radix)
	if !ok {
		return Number{}, fmt.Errorf("literal: invalid integer constant %q", lexeme)
	}
	if bi.IsInt64() || fitsInt128(bi) {
		return Number{Kind: KindInt128, BigInt: bi}, nil
	}
	return Number{Kind: KindBigInt, BigInt: bi}, nil
}

// DecodeHexInt decodes a "0x"-prefixed hex integer lexeme to the narrowest
// *unsigned* width selected by digit count, per spec.md §4.2: each hex digit
// is 4 bits, so ≤2 digits (≤8 bits) is 8-bit, ≤4 is 16-bit, ≤8 is 32-bit,
// ≤16 is 64-bit, ≤32 is 128-bit, and anything longer is arbitrary precision.
// A literal's leading zeros count toward its digit length — "0x0FF" is
// 16-bit, not 8-bit — since the written width is itself meaningful for a
// bit-pattern radix the way it is not for decimal.
func DecodeHexInt(lexeme string) (Number, error) {
	digits := stripRadixPrefix(stripUnderscores(lexeme), 16)
	return decodeUnsignedLadder(digits, 16, 4)
}

// DecodeBinInt decodes a "0b"-prefixed binary integer lexeme the same way
// DecodeHexInt decodes a hex one, with each binary digit worth 1 bit: ≤8
// digits is 8-bit, ≤16 is 16-bit, ≤32 is 32-bit, ≤64 is 64-bit, ≤128 is
// 128-bit, else arbitrary precision.
func DecodeBinInt(lexeme string) (Number, error) {
	digits := stripRadixPrefix(stripUnderscores(lexeme), 2)
	return decodeUnsignedLadder(digits, 2, 1)
}

// decodeUnsignedLadder implements the shared digit-count-to-width rule
// DecodeHexInt/DecodeBinInt both follow: digits's bit width is its length
// times bitsPerDigit, and the narrowest unsigned tier that covers that width
// is chosen regardless of the value's actual magnitude.
func decodeUnsignedLadder(digits string, radix, bitsPerDigit int) (Number, error) {
	if digits == "" {
		return Number{}, fmt.Errorf("literal: radix literal has no digits")
	}
	bi, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return Number{}, fmt.Errorf("literal: invalid integer constant %q", digits)
	}
	switch bits := len(digits) * bitsPerDigit; {
	case bits <= 8:
		return Number{Kind: KindUint8, Uint8: uint8(bi.Uint64())}, nil
	case bits <= 16:
		return Number{Kind: KindUint16, Uint16: uint16(bi.Uint64())}, nil
	case bits <= 32:
		return Number{Kind: KindUint32, Uint32: uint32(bi.Uint64())}, nil
	case bits <= 64:
		return Number{Kind: KindUint64, Uint64: bi.Uint64()}, nil
	case bits <= 128:
		return Number{Kind: KindUint128, BigInt: bi}, nil
	default:
		return Number{Kind: KindBigUint, BigInt: bi}, nil
	}
}

// DecodeOctInt decodes a "0o"-prefixed octal integer lexeme as a 64-bit
// unsigned value, then demotes it to the narrowest unsigned type — 8, 16,
// 32, or 64 bits — that still holds it exactly, per spec.md §4.2. Unlike
// DecodeHexInt/DecodeBinInt, the width here tracks the decoded magnitude,
// not the digit count.
func DecodeOctInt(lexeme string) (Number, error) {
	digits := stripRadixPrefix(stripUnderscores(lexeme), 8)
	v, err := strconv.ParseUint(digits, 8, 64)
	if err != nil {
		return Number{}, fmt.Errorf("literal: invalid integer constant %q: %w", lexeme, err)
	}
	switch {
	case v <= math.MaxUint8:
		return Number{Kind: KindUint8, Uint8: uint8(v)}, nil
	case v <= math.MaxUint16:
		return Number{Kind: KindUint16, Uint16: uint16(v)}, nil
	case v <= math.MaxUint32:
		return Number{Kind: KindUint32, Uint32: uint32(v)}, nil
	default:
		return Number{Kind: KindUint64, Uint64: v}, nil
	}
}

var int128Min, int128Max = computeInt128Bounds()

func computeInt128Bounds() (*big.Int, *big.Int) {
	max := new(big.Int).Lsh(big.NewInt(1), 127)
	min := new(big.Int).Neg(max)
	max.Sub(max, big.NewInt(1))
	return min, max
}

func fitsInt128(bi *big.Int) bool {
	return bi.Cmp(int128Min) >= 0 && bi.Cmp(int128Max) <= 0
}

// DecodeFloat decodes a decimal float lexeme (with optional exponent and an
// "f"/"F" marker forcing Float32) to Float64, or to Float32 when the marker
// is present, falling back to an arbitrary-precision big.Float when the
// magnitude is out of float64 range. The "f"/"F" marker is interchangeable
// with "e"/"E": it may stand alone ("2.0f") or introduce its own
// optional-signed exponent digits ("2.0f0", "1.5f-3"), so it is rewritten to
// "e" (or dropped, if bare) before parsing.
func DecodeFloat(lexeme string) (Number, error) {
	clean := stripUnderscores(lexeme)

	forceFloat32 := false
	if idx := strings.IndexAny(clean, "fF"); idx >= 0 {
		forceFloat32 = true
		if idx == len(clean)-1 {
			clean = clean[:idx]
		} else {
			clean = clean[:idx] + "e" + clean[idx+1:]
		}
	}

	f64, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			bf, _, err2 := big.ParseFloat(clean, 10, 256, big.ToNearestEven)
			if err2 != nil {
				return Number{}, fmt.Errorf("literal: invalid float constant %q: %w", lexeme, err2)
			}
			return Number{Kind: KindBigFloat, BigFloat: bf}, nil
		}
		return Number{}, fmt.Errorf("literal: invalid float constant %q: %w", lexeme, err)
	}
	if forceFloat32 {
		return Number{Kind: KindFloat32, Float32: float32(f64)}, nil
	}
	return Number{Kind: KindFloat64, Float64: f64}, nil
}

func stripUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

func stripRadixPrefix(s string, radix int) string {
	switch radix {
	case 16:
		return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	case 8:
		return strings.TrimPrefix(strings.TrimPrefix(s, "0o"), "0O")
	case 2:
		return strings.TrimPrefix(strings.TrimPrefix(s, "0b"), "0B")
	default:
		return s
	}
}
