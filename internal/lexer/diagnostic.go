package lexer

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorTag string

const (
	UnterminatedBlockCommentTag ErrorTag = "UnterminatedBlockComment"
	UnterminatedStringTag       ErrorTag = "UnterminatedString"
	UnterminatedHeaderTag       ErrorTag = "UnterminatedHeader"
	MalformedNumberTag          ErrorTag = "MalformedNumber"
	MalformedLiteralTag         ErrorTag = "MalformedLiteral"
	UnsupportedLiteralTag       ErrorTag = "UnsupportedLiteral"
)

var ErrUnsupportedLiteral = errors.New("literal decoding is not implemented for this kind")

type Error struct {
	Tag ErrorTag
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}

	var b strings.Builder
	b.WriteString(string(e.Tag))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Diagnostic is a recoverable anomaly found while scanning. Scanning always
// continues past it; the affected token is still emitted.
type Diagnostic struct {
	Tag    ErrorTag
	Span   Span
	Line   int
	Reason error
}

func (d Diagnostic) Error() string {
	if d.Reason == nil {
		return fmt.Sprintf("%d:%s: %s", d.Line, d.Span, d.Tag)
	}
	return fmt.Sprintf("%d:%s: %s: %v", d.Line, d.Span, d.Tag, d.Reason)
}

func (d Diagnostic) Unwrap() error {
	return d.Reason
}
