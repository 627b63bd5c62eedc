package lexer

import "unicode/utf8"

// eof is returned by peek and advance once the input is exhausted.
const eof rune = -1

type cursor struct {
	source string
	index  int
	line   int
}

func newCursor(source string) cursor {
	return cursor{source: source, line: 1}
}

func (c *cursor) atEnd() bool {
	return c.index >= len(c.source)
}

func (c *cursor) offset() int {
	return c.index
}

func (c *cursor) peek() rune {
	if c.atEnd() {
		return eof
	}
	if b := c.source[c.index]; b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.index:])
	return r
}

func (c *cursor) advance() rune {
	if c.atEnd() {
		return eof
	}
	r, w := rune(c.source[c.index]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRuneInString(c.source[c.index:])
	}
	c.index += w
	if r == '\n' {
		c.line++
	}
	return r
}

func (c *cursor) advanceWhile(pred func(rune) bool) {
	for !c.atEnd() && pred(c.peek()) {
		c.advance()
	}
}
