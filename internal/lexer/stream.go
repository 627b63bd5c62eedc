package lexer

import (
	"fmt"

	"github.com/samber/lo"
)

// Stream is the ordered, append-only output of a scan.
type Stream struct {
	tokens []Token
}

func NewStream(tokens ...Token) *Stream {
	s := &Stream{}
	for _, t := range tokens {
		s.Push(t)
	}
	return s
}

// Push appends t. Nothing may follow an EOF token.
func (s *Stream) Push(t Token) {
	if n := len(s.tokens); n != 0 && s.tokens[n-1].IsEOF() {
		panic(fmt.Sprintf("should not reach here: push %s after EOF", t))
	}
	s.tokens = append(s.tokens, t)
}

// Pop removes and returns the last pushed token.
func (s *Stream) Pop() (Token, bool) {
	if len(s.tokens) == 0 {
		return Token{}, false
	}
	t := s.tokens[len(s.tokens)-1]
	s.tokens = s.tokens[:len(s.tokens)-1]
	return t, true
}

func (s *Stream) Len() int {
	return len(s.tokens)
}

func (s *Stream) At(i int) Token {
	return s.tokens[i]
}

// Tokens returns a copy of the tokens in scan order.
func (s *Stream) Tokens() []Token {
	return append([]Token(nil), s.tokens...)
}

// Range calls fn for each token in order until fn returns false.
func (s *Stream) Range(fn func(i int, t Token) bool) {
	for i, t := range s.tokens {
		if !fn(i, t) {
			return
		}
	}
}

// Significant returns the tokens that are not trivia.
func (s *Stream) Significant() []Token {
	return lo.Filter(s.tokens, func(t Token, _ int) bool {
		return !t.Kind.IsTrivia()
	})
}
