package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/ccr/internal/lexer"
)

func TestStream(t *testing.T) {
	t.Parallel()

	a := raw(lexer.Ident, "a", 0)
	comment := raw(lexer.LineComment, "//", 2)
	s := lexer.NewStream(a, comment)

	if s.Len() != 2 {
		t.Fatalf("expect to 2 tokens but got %d", s.Len())
	}
	if diff := cmp.Diff([]lexer.Token{a}, s.Significant(), cmpValue); diff != "" {
		t.Errorf("significant tokens mismatch (-want +got):\n%s", diff)
	}

	tok, ok := s.Pop()
	if !ok || tok != comment {
		t.Errorf("expect to pop %s but got %s", comment, tok)
	}
	s.Push(eofAt(4))

	// restartable
	for i := 0; i < 2; i++ {
		var kinds []lexer.Kind
		s.Range(func(_ int, tok lexer.Token) bool {
			kinds = append(kinds, tok.Kind)
			return true
		})
		if diff := cmp.Diff([]lexer.Kind{lexer.Ident, lexer.EOF}, kinds); diff != "" {
			t.Errorf("kinds mismatch (-want +got):\n%s", diff)
		}
	}

	tokens := s.Tokens()
	tokens[0] = comment
	if s.At(0) != a {
		t.Error("Tokens must return a copy")
	}
}

func TestStreamPushAfterEOF(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("should panic")
		}
	}()

	s := lexer.NewStream(eofAt(0))
	s.Push(raw(lexer.Ident, "a", 0))
}

func TestStreamPopEmpty(t *testing.T) {
	t.Parallel()

	var s lexer.Stream
	if _, ok := s.Pop(); ok {
		t.Error("should be empty")
	}
}
