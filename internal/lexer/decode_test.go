package lexer_test

import (
	"errors"
	"math"
	"testing"

	"github.com/karupanerura/ccr/internal/lexer"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		kind      lexer.LiteralKind
		lexeme    string
		expected  any
		expectErr bool
		tag       lexer.ErrorTag
		wraps     error
	}{
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Decimal}, lexeme: "123", expected: uint64(123)},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Hexadecimal, PrefixLen: 2}, lexeme: "0xff", expected: uint64(255)},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Binary, PrefixLen: 2}, lexeme: "0b1001", expected: uint64(9)},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Octal}, lexeme: "0755", expected: uint64(493)},
		{kind: lexer.LiteralKind{Class: lexer.FloatLiteral, Radix: lexer.Decimal}, lexeme: "2.5", expected: 2.5},
		{kind: lexer.LiteralKind{Class: lexer.StrLiteral, PrefixLen: 1}, lexeme: `"abc"`, expected: "abc"},
		{kind: lexer.LiteralKind{Class: lexer.StrLiteral, PrefixLen: 1}, lexeme: `"abc`, expected: "abc"},
		{kind: lexer.LiteralKind{Class: lexer.StrLiteral, PrefixLen: 1}, lexeme: `"`, expected: ""},
		{kind: lexer.LiteralKind{Class: lexer.RawLiteral}, lexeme: "xyz", expected: "xyz"},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Binary, PrefixLen: 2}, lexeme: "0b", expectErr: true, tag: lexer.MalformedNumberTag},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Hexadecimal, PrefixLen: 2}, lexeme: "1", expectErr: true, tag: lexer.MalformedNumberTag},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral}, lexeme: "0x10", expectErr: true, tag: lexer.MalformedNumberTag},
		{kind: lexer.LiteralKind{Class: lexer.IntLiteral, Radix: lexer.Radix(36)}, lexeme: "zz", expectErr: true, tag: lexer.MalformedNumberTag},
		{kind: lexer.LiteralKind{Class: lexer.FloatLiteral, Radix: lexer.Decimal, PrefixLen: -1}, lexeme: "1.5", expectErr: true, tag: lexer.MalformedNumberTag},
		{kind: lexer.LiteralKind{Class: lexer.StrLiteral, PrefixLen: 3}, lexeme: `"`, expectErr: true, tag: lexer.MalformedLiteralTag},
		{kind: lexer.LiteralKind{Class: lexer.CharLiteral}, lexeme: "'a'", expectErr: true, tag: lexer.UnsupportedLiteralTag, wraps: lexer.ErrUnsupportedLiteral},
		{kind: lexer.LiteralKind{Class: lexer.ByteLiteral}, lexeme: "b'a'", expectErr: true, tag: lexer.UnsupportedLiteralTag, wraps: lexer.ErrUnsupportedLiteral},
	} {
		tt := tt
		t.Run(tt.kind.String()+"/"+tt.lexeme, func(t *testing.T) {
			t.Parallel()

			v, err := lexer.Decode(tt.kind, tt.lexeme)
			if tt.expectErr {
				if err == nil {
					t.Fatal("should be error")
				}
				var tagged *lexer.Error
				if !errors.As(err, &tagged) {
					t.Fatalf("expect to *lexer.Error but got %T", err)
				}
				if tagged.Tag != tt.tag {
					t.Errorf("expect to tag %s but got %s", tt.tag, tagged.Tag)
				}
				if tt.wraps != nil && !errors.Is(err, tt.wraps) {
					t.Errorf("expect to wrap %v but got %v", tt.wraps, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			switch expected := tt.expected.(type) {
			case float64:
				if got := v.Float(); math.Abs(got-expected) > 0.0000001 {
					t.Errorf("expect to %v but got %v", expected, got)
				}
			default:
				if got := v.Interface(); got != tt.expected {
					t.Errorf("expect to %v (%T) but got %v (%T)", tt.expected, tt.expected, got, got)
				}
			}
		})
	}
}
