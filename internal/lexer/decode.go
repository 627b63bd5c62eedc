package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Decode converts the raw lexeme of a literal into its value. Every error it
// returns is an *Error.
func Decode(kind LiteralKind, lexeme string) (Value, error) {
	if kind.PrefixLen < 0 || kind.PrefixLen > len(lexeme) {
		return Value{}, &Error{Tag: malformedTag(kind.Class), Err: fmt.Errorf("prefix length %d out of range for %q", kind.PrefixLen, lexeme)}
	}

	switch kind.Class {
	case IntLiteral:
		if !kind.Radix.valid() {
			return Value{}, &Error{Tag: MalformedNumberTag, Err: fmt.Errorf("unsupported radix: %s", kind.Radix)}
		}
		digits := lexeme[kind.PrefixLen:]
		n, err := strconv.ParseUint(digits, int(kind.Radix), 64)
		if err != nil {
			return Value{}, &Error{Tag: MalformedNumberTag, Err: fmt.Errorf("strconv.ParseUint(%q, %d): %w", digits, kind.Radix, err)}
		}
		return IntOf(n), nil

	case FloatLiteral:
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Value{}, &Error{Tag: MalformedNumberTag, Err: fmt.Errorf("strconv.ParseFloat(%q): %w", lexeme, err)}
		}
		return FloatOf(f), nil

	case StrLiteral:
		body := lexeme[kind.PrefixLen:]
		if len(lexeme) > kind.PrefixLen && strings.HasSuffix(body, `"`) {
			body = body[:len(body)-1]
		}
		return StringOf(body), nil

	case RawLiteral:
		return RawOf(lexeme), nil

	case CharLiteral, ByteLiteral:
		return Value{}, &Error{Tag: UnsupportedLiteralTag, Err: fmt.Errorf("%s: %w", kind, ErrUnsupportedLiteral)}

	default:
		panic(fmt.Sprintf("should not reach here: literal class=%d", kind.Class))
	}
}

func malformedTag(class LiteralClass) ErrorTag {
	switch class {
	case IntLiteral, FloatLiteral:
		return MalformedNumberTag
	default:
		return MalformedLiteralTag
	}
}
