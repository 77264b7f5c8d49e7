package literal

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var numberCmpOpts = cmp.Options{
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
	cmp.Comparer(func(a, b *big.Float) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
}

func TestDecodeInt_Decimal(t *testing.T) {
	tests := []struct {
		lexeme string
		want   int
	}{
		{"0", 0},
		{"123", 123},
		{"1_000", 1000},
		{"999_999_999", 999999999},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			n, err := DecodeInt(tt.lexeme, 10)
			if err != nil {
				t.Fatalf("DecodeInt(%q): %v", tt.lexeme, err)
			}
			if n.Kind != KindInt {
				t.Fatalf("expected KindInt, got %v", n.Kind)
			}
			if n.Int != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, n.Int)
			}
		})
	}
}

func TestDecodeHexInt_WidthByDigitCount(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   NumberKind
	}{
		{"0x1", KindUint8},
		{"0xFF", KindUint8},
		{"0x100", KindUint16},   // 3 digits -> 12 bits -> 16-bit
		{"0xFFFF", KindUint16},  // 4 digits -> 16 bits
		{"0x10000", KindUint32}, // 5 digits -> 20 bits -> 32-bit
		{"0xFFFFFFFF", KindUint32},
		{"0x100000000", KindUint64}, // 9 digits -> 36 bits -> 64-bit
		{"0xFFFFFFFFFFFFFFFF", KindUint64},
		{"0x10000000000000000", KindUint128}, // 17 digits -> 68 bits -> 128-bit
		{"0x" + strings.Repeat("F", 33), KindBigUint},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			n, err := DecodeHexInt(tt.lexeme)
			if err != nil {
				t.Fatalf("DecodeHexInt(%q): %v", tt.lexeme, err)
			}
			if n.Kind != tt.kind {
				t.Fatalf("DecodeHexInt(%q): expected %v, got %v", tt.lexeme, tt.kind, n.Kind)
			}
		})
	}
}

func TestDecodeHexInt_Value(t *testing.T) {
	n, err := DecodeHexInt("0xFF")
	if err != nil {
		t.Fatalf("DecodeHexInt: %v", err)
	}
	if n.Kind != KindUint8 || n.Uint8 != 255 {
		t.Fatalf("expected KindUint8(255), got %v(%d)", n.Kind, n.Uint8)
	}
}

func TestDecodeHexInt_WithUnderscore(t *testing.T) {
	n, err := DecodeHexInt("0xAB_CD")
	if err != nil {
		t.Fatalf("DecodeHexInt: %v", err)
	}
	if n.Kind != KindUint16 || n.Uint16 != 0xABCD {
		t.Fatalf("expected KindUint16(%d), got %v(%d)", 0xABCD, n.Kind, n.Uint16)
	}
}

func TestDecodeBinInt_WidthByDigitCount(t *testing.T) {
	n, err := DecodeBinInt("0b11111111")
	if err != nil {
		t.Fatalf("DecodeBinInt: %v", err)
	}
	if n.Kind != KindUint8 || n.Uint8 != 0xFF {
		t.Fatalf("expected KindUint8(255), got %v(%d)", n.Kind, n.Uint8)
	}

	n, err = DecodeBinInt("0b100000000")
	if err != nil {
		t.Fatalf("DecodeBinInt: %v", err)
	}
	if n.Kind != KindUint16 || n.Uint16 != 256 {
		t.Fatalf("expected KindUint16(256), got %v(%d)", n.Kind, n.Uint16)
	}
}

func TestDecodeOctInt_DemotesToNarrowestWidth(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   NumberKind
		want   uint64
	}{
		{"0o7", KindUint8, 7},
		{"0o377", KindUint8, 255},       // 255
		{"0o400", KindUint16, 256},      // exceeds uint8
		{"0o177777", KindUint16, 65535}, // max uint16
		{"0o200000", KindUint32, 65536}, // exceeds uint16
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			n, err := DecodeOctInt(tt.lexeme)
			if err != nil {
				t.Fatalf("DecodeOctInt(%q): %v", tt.lexeme, err)
			}
			if n.Kind != tt.kind {
				t.Fatalf("DecodeOctInt(%q): expected %v, got %v", tt.lexeme, tt.kind, n.Kind)
			}
		})
	}
}

func TestDecodeInt_BigIntFallback(t *testing.T) {
	lexeme := "999999999999999999999999999999999999999999"
	n, err := DecodeInt(lexeme, 10)
	if err != nil {
		t.Fatalf("DecodeInt(%q): %v", lexeme, err)
	}
	if n.Kind != KindBigInt {
		t.Fatalf("expected KindBigInt, got %v", n.Kind)
	}
	want, ok := new(big.Int).SetString(lexeme, 10)
	if !ok {
		t.Fatalf("test setup: could not parse %q as big.Int", lexeme)
	}
	if diff := cmp.Diff(Number{Kind: KindBigInt, BigInt: want}, n, numberCmpOpts); diff != "" {
		t.Fatalf("DecodeInt(%q) mismatch (-want +got):\n%s", lexeme, diff)
	}
}

func TestDecodeInt_Int128Range(t *testing.T) {
	// Exceeds int64 but fits in 128 bits.
	lexeme := "99999999999999999999"
	n, err := DecodeInt(lexeme, 10)
	if err != nil {
		t.Fatalf("DecodeInt(%q): %v", lexeme, err)
	}
	if n.Kind != KindInt128 {
		t.Fatalf("expected KindInt128, got %v", n.Kind)
	}
}

func TestDecodeInt_Invalid(t *testing.T) {
	if _, err := DecodeInt("not-a-number", 10); err == nil {
		t.Fatalf("expected an error for an invalid integer lexeme")
	}
}

func TestDecodeFloat_Simple(t *testing.T) {
	tests := []struct {
		lexeme string
		want   float64
	}{
		{"1.0", 1.0},
		{"3.14", 3.14},
		{"0.5", 0.5},
		{"1.", 1.0},
		{".5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			n, err := DecodeFloat(tt.lexeme)
			if err != nil {
				t.Fatalf("DecodeFloat(%q): %v", tt.lexeme, err)
			}
			if n.Kind != KindFloat64 {
				t.Fatalf("expected KindFloat64, got %v", n.Kind)
			}
			if n.Float64 != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, n.Float64)
			}
		})
	}
}

func TestDecodeFloat_Float32Suffix(t *testing.T) {
	n, err := DecodeFloat("1.5f")
	if err != nil {
		t.Fatalf("DecodeFloat: %v", err)
	}
	if n.Kind != KindFloat32 {
		t.Fatalf("expected KindFloat32, got %v", n.Kind)
	}
	if n.Float32 != 1.5 {
		t.Fatalf("expected 1.5, got %v", n.Float32)
	}
}

func TestDecodeFloat_Float32SuffixWithExponentDigits(t *testing.T) {
	tests := []struct {
		lexeme string
		want   float32
	}{
		{"2.0f0", 2.0},
		{"1.5f-3", 0.0015},
		{"3.0F0", 3.0},
	}
	for _, tt := range tests {
		n, err := DecodeFloat(tt.lexeme)
		if err != nil {
			t.Fatalf("DecodeFloat(%q): %v", tt.lexeme, err)
		}
		if n.Kind != KindFloat32 {
			t.Fatalf("DecodeFloat(%q): expected KindFloat32, got %v", tt.lexeme, n.Kind)
		}
		if n.Float32 != tt.want {
			t.Fatalf("DecodeFloat(%q) = %v, want %v", tt.lexeme, n.Float32, tt.want)
		}
	}
}

func TestDecodeFloat_Underscore(t *testing.T) {
	n, err := DecodeFloat("1_000.5")
	if err != nil {
		t.Fatalf("DecodeFloat: %v", err)
	}
	if n.Float64 != 1000.5 {
		t.Fatalf("expected 1000.5, got %v", n.Float64)
	}
}

func TestDecodeFloat_BigFloatFallback(t *testing.T) {
	// Exceeds float64 exponent range, should fall back to big.Float.
	lexeme := "1e400"
	n, err := DecodeFloat(lexeme)
	if err != nil {
		t.Fatalf("DecodeFloat(%q): %v", lexeme, err)
	}
	if n.Kind != KindBigFloat {
		t.Fatalf("expected KindBigFloat, got %v", n.Kind)
	}
	want, _, err := big.ParseFloat("1e400", 10, 256, big.ToNearestEven)
	if err != nil {
		t.Fatalf("test setup: %v", err)
	}
	if diff := cmp.Diff(Number{Kind: KindBigFloat, BigFloat: want}, n, numberCmpOpts); diff != "" {
		t.Fatalf("DecodeFloat(%q) mismatch (-want +got):\n%s", lexeme, diff)
	}
}

func TestDecodeFloat_Invalid(t *testing.T) {
	if _, err := DecodeFloat("not-a-float"); err == nil {
		t.Fatalf("expected an error for an invalid float lexeme")
	}
}
