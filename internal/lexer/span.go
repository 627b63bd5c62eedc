package lexer

import "fmt"

// Span is a half-open byte range [Start, End) into the scanned source.
type Span struct {
	Start, End int
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Slice returns the part of src covered by s. src must be the text the span
// was produced from.
func (s Span) Slice(src string) string {
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
