package lexer

import "fmt"

// Token is one lexical unit. Literal is meaningful only when Kind is Literal.
type Token struct {
	Kind    Kind
	Literal LiteralKind
	Value   Value
	Span    Span
}

func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// Text returns the lexeme of t. src must be the source t was scanned from.
func (t Token) Text(src string) string {
	return t.Span.Slice(src)
}

func (t Token) String() string {
	if t.Kind == Literal {
		return fmt.Sprintf("%s(%s)%s %s", t.Kind, t.Literal, t.Span, t.Value)
	}
	return fmt.Sprintf("%s%s %s", t.Kind, t.Span, t.Value)
}
