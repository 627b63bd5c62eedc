package lexer

import (
	"log"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
)

// Options selects scanning behavior beyond the default grammar.
type Options struct {
	// EmitWhitespace reports runs of whitespace as Whitespace tokens instead
	// of skipping them.
	EmitWhitespace bool

	// IdentDigits lets identifiers continue with decimal digits.
	IdentDigits bool

	// CPunct recognizes ':' as Colon and '%' as Percent. Without it both
	// are Unknown.
	CPunct bool
}

var scannerDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("CCR_LEXER_DEBUG")); v && err == nil {
		scannerDebugLog = true
	}
}

// Scanner turns source text into tokens one at a time. A Scanner must not
// be used from more than one goroutine.
type Scanner struct {
	cur         cursor
	opts        Options
	debug       bool
	diagnostics []Diagnostic
}

func NewScanner(source string, opts Options) *Scanner {
	return &Scanner{cur: newCursor(source), opts: opts, debug: scannerDebugLog}
}

func NewScannerWithDebugOutput(source string, opts Options) *Scanner {
	s := NewScanner(source, opts)
	s.debug = true
	return s
}

// Tokenize scans source to exhaustion.
func Tokenize(source string, opts Options) (*Stream, []Diagnostic) {
	s := NewScanner(source, opts)
	return s.Tokenize(), s.Diagnostics()
}

func (s *Scanner) Source() string {
	return s.cur.source
}

// Line is the 1-based line of the next unconsumed character.
func (s *Scanner) Line() int {
	return s.cur.line
}

func (s *Scanner) Diagnostics() []Diagnostic {
	return s.diagnostics
}

// Tokenize drains the scanner. The returned stream ends with the EOF token.
func (s *Scanner) Tokenize() *Stream {
	stream := &Stream{}
	for {
		tok := s.Next()
		stream.Push(tok)
		if tok.IsEOF() {
			break
		}
	}
	if s.debug && len(s.diagnostics) != 0 {
		pp.Println(s.diagnostics)
	}
	return stream
}

// Next returns the next token. Once the input is exhausted it returns an
// EOF token on every call.
func (s *Scanner) Next() Token {
	tok := s.next()
	if s.debug {
		log.Printf("token: %s %q", tok, tok.Text(s.cur.source))
	}
	return tok
}

func (s *Scanner) next() Token {
	if isWhitespace(s.cur.peek()) {
		start := s.cur.offset()
		s.cur.advanceWhile(isWhitespace)
		if s.opts.EmitWhitespace {
			return s.token(Whitespace, start)
		}
	}

	start, line := s.cur.offset(), s.cur.line
	c := s.cur.advance()
	if c == eof {
		return Token{Kind: EOF, Span: Span{Start: start, End: start}}
	}

	var kind Kind
	switch c {
	case '/':
		switch s.cur.peek() {
		case '/':
			s.cur.advanceWhile(func(c rune) bool { return c != '\n' })
			kind = LineComment
		case '*':
			s.cur.advance()
			s.blockComment(start, line)
			kind = BlockComment
		default:
			kind = Slash
		}

	case '0':
		switch s.cur.peek() {
		case 'b':
			s.cur.advance()
			return s.number(start, line, Binary)
		case 'x':
			s.cur.advance()
			return s.number(start, line, Hexadecimal)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			return s.number(start, line, Octal)
		default:
			return s.number(start, line, Decimal)
		}
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return s.number(start, line, Decimal)

	case '"':
		return s.stringLiteral(start, line)

	case ';':
		kind = SemiColon
	case ',':
		kind = Comma
	case '.':
		kind = Dot
	case '(':
		kind = LeftParen
	case ')':
		kind = RightParen
	case '{':
		kind = LeftBrace
	case '}':
		kind = RightBrace
	case '[':
		kind = LeftBracket
	case ']':
		kind = RightBracket
	case '#':
		kind = Pound
	case '*':
		kind = Star
	case '&':
		kind = And
	case '|':
		kind = Or
	case '^':
		kind = Caret
	case '~':
		kind = Tilde
	case ':':
		kind = s.cPunct(Colon)
	case '%':
		kind = s.cPunct(Percent)

	case '-':
		switch s.cur.peek() {
		case '-':
			s.cur.advance()
			kind = MinusMinus
		case '>':
			s.cur.advance()
			kind = Arrow
		default:
			kind = Minus
		}
	case '+':
		kind = s.pair('+', PlusPlus, Plus)
	case '<':
		if isLetter(s.cur.peek()) {
			s.header(start, line)
			kind = Header
		} else {
			kind = s.pair('=', LtEqual, Lt)
		}
	case '>':
		kind = s.pair('=', GtEqual, Gt)
	case '=':
		kind = s.pair('=', EqualEqual, Equal)
	case '!':
		kind = s.pair('=', BangEqual, Bang)

	default:
		if isIdentStart(c) {
			s.cur.advanceWhile(s.isIdentPart)
			kind = Ident
		} else {
			kind = Unknown
		}
	}

	return s.token(kind, start)
}

func (s *Scanner) token(kind Kind, start int) Token {
	span := Span{Start: start, End: s.cur.offset()}
	return Token{Kind: kind, Value: RawOf(span.Slice(s.cur.source)), Span: span}
}

func (s *Scanner) literal(kind LiteralKind, start, line int) Token {
	span := Span{Start: start, End: s.cur.offset()}
	value, err := Decode(kind, span.Slice(s.cur.source))
	if err != nil {
		e := err.(*Error)
		s.report(e.Tag, span, line, e.Err)
	}
	return Token{Kind: Literal, Literal: kind, Value: value, Span: span}
}

func (s *Scanner) report(tag ErrorTag, span Span, line int, reason error) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Tag: tag, Span: span, Line: line, Reason: reason})
}

// pair consumes second if it is next and returns long, otherwise short.
func (s *Scanner) pair(second rune, long, short Kind) Kind {
	if s.cur.peek() == second {
		s.cur.advance()
		return long
	}
	return short
}

func (s *Scanner) cPunct(kind Kind) Kind {
	if s.opts.CPunct {
		return kind
	}
	return Unknown
}

// number scans the digit run following an already consumed leading digit
// (or 0b / 0x marker).
func (s *Scanner) number(start, line int, radix Radix) Token {
	s.cur.advanceWhile(radix.isDigit)

	switch radix {
	case Binary, Hexadecimal:
		return s.literal(LiteralKind{Class: IntLiteral, Radix: radix, PrefixLen: 2}, start, line)
	case Decimal:
		if s.cur.peek() == '.' {
			s.cur.advance()
			s.cur.advanceWhile(Decimal.isDigit)
			return s.literal(LiteralKind{Class: FloatLiteral, Radix: Decimal}, start, line)
		}
	}
	return s.literal(LiteralKind{Class: IntLiteral, Radix: radix}, start, line)
}

// stringLiteral scans up to and including the closing quote. Escapes are not
// recognized: a backslash-quote ends the literal.
func (s *Scanner) stringLiteral(start, line int) Token {
	s.cur.advanceWhile(func(c rune) bool { return c != '"' })
	if s.cur.atEnd() {
		s.report(UnterminatedStringTag, Span{Start: start, End: s.cur.offset()}, line, nil)
	} else {
		s.cur.advance()
	}
	return s.literal(LiteralKind{Class: StrLiteral, PrefixLen: 1}, start, line)
}

func (s *Scanner) blockComment(start, line int) {
	for {
		switch s.cur.advance() {
		case eof:
			s.report(UnterminatedBlockCommentTag, Span{Start: start, End: s.cur.offset()}, line, nil)
			return
		case '*':
			if s.cur.peek() == '/' {
				s.cur.advance()
				return
			}
		}
	}
}

// header scans an include target such as <stdio.h> up to, but excluding, the
// closing '>'. Any '<' followed by a letter is taken as a header.
func (s *Scanner) header(start, line int) {
	s.cur.advanceWhile(func(c rune) bool { return c != '>' })
	if s.cur.atEnd() {
		s.report(UnterminatedHeaderTag, Span{Start: start, End: s.cur.offset()}, line, nil)
	}
}

func (s *Scanner) isIdentPart(c rune) bool {
	return isIdentStart(c) || (s.opts.IdentDigits && Decimal.isDigit(c))
}

func isWhitespace(c rune) bool {
	switch c {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}

func isLetter(c rune) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentStart(c rune) bool {
	return isLetter(c) || c == '_'
}
