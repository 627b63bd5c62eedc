package lexer

import (
	"fmt"

	"github.com/samber/lo"
)

type Kind int

const (
	Unknown Kind = iota
	EOF

	// trivia
	Whitespace
	LineComment
	BlockComment

	Ident
	Literal
	Header

	// punctuation
	LeftParen    // (
	RightParen   // )
	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]
	Comma        // ,
	Dot          // .
	SemiColon    // ;
	Colon        // :
	Pound        // #

	// operators
	Plus       // +
	PlusPlus   // ++
	Minus      // -
	MinusMinus // --
	Arrow      // ->
	Star       // *
	Slash      // /
	Percent    // %
	And        // &
	Or         // |
	Caret      // ^
	Tilde      // ~
	Bang       // !
	BangEqual  // !=
	Equal      // =
	EqualEqual // ==
	Lt         // <
	LtEqual    // <=
	Gt         // >
	GtEqual    // >=
)

var kindNames = map[Kind]string{
	Unknown:      "Unknown",
	EOF:          "EOF",
	Whitespace:   "Whitespace",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	Ident:        "Ident",
	Literal:      "Literal",
	Header:       "Header",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Comma:        "Comma",
	Dot:          "Dot",
	SemiColon:    "SemiColon",
	Colon:        "Colon",
	Pound:        "Pound",
	Plus:         "Plus",
	PlusPlus:     "PlusPlus",
	Minus:        "Minus",
	MinusMinus:   "MinusMinus",
	Arrow:        "Arrow",
	Star:         "Star",
	Slash:        "Slash",
	Percent:      "Percent",
	And:          "And",
	Or:           "Or",
	Caret:        "Caret",
	Tilde:        "Tilde",
	Bang:         "Bang",
	BangEqual:    "BangEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Lt:           "Lt",
	LtEqual:      "LtEqual",
	Gt:           "Gt",
	GtEqual:      "GtEqual",
}

var kindsByName = lo.Invert(kindNames)

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return Unknown, fmt.Errorf("unknown token kind: %s", name)
	}
	return k, nil
}

// IsTrivia reports whether tokens of this kind carry no grammatical meaning.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment:
		return true
	default:
		return false
	}
}

type Radix int

const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return fmt.Sprintf("Radix(%d)", int(r))
	}
}

func (r Radix) valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	default:
		return false
	}
}

// isDigit reports whether c is a valid digit of the radix.
func (r Radix) isDigit(c rune) bool {
	switch r {
	case Binary:
		return c == '0' || c == '1'
	case Octal:
		return '0' <= c && c <= '7'
	case Decimal:
		return '0' <= c && c <= '9'
	case Hexadecimal:
		return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
	default:
		return false
	}
}

type LiteralClass int

const (
	RawLiteral LiteralClass = iota
	IntLiteral
	FloatLiteral
	CharLiteral
	StrLiteral
	ByteLiteral
)

func (c LiteralClass) String() string {
	switch c {
	case RawLiteral:
		return "Raw"
	case IntLiteral:
		return "Int"
	case FloatLiteral:
		return "Float"
	case CharLiteral:
		return "Char"
	case StrLiteral:
		return "Str"
	case ByteLiteral:
		return "Byte"
	default:
		return fmt.Sprintf("LiteralClass(%d)", int(c))
	}
}

// LiteralKind refines a Literal token. Radix is set for Int and Float.
// PrefixLen is the number of leading bytes of the lexeme to skip before
// decoding: 2 for 0b/0x integers and 1 for strings (the opening quote).
type LiteralKind struct {
	Class     LiteralClass
	Radix     Radix
	PrefixLen int
}

func (k LiteralKind) String() string {
	switch k.Class {
	case IntLiteral, FloatLiteral:
		return fmt.Sprintf("%s{radix: %s}", k.Class, k.Radix)
	default:
		return k.Class.String()
	}
}
