package lexer

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	AbsentValue ValueKind = iota
	IntValue
	FloatValue
	CharValue
	StringValue
	ByteValue
	RawValue
)

func (k ValueKind) String() string {
	switch k {
	case AbsentValue:
		return "Absent"
	case IntValue:
		return "Int"
	case FloatValue:
		return "Float"
	case CharValue:
		return "Char"
	case StringValue:
		return "String"
	case ByteValue:
		return "Byte"
	case RawValue:
		return "Raw"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is the decoded payload of a token. Only the field matching Kind is
// meaningful; String and Raw payloads share memory with the scanned source.
type Value struct {
	Kind ValueKind

	i uint64
	f float64
	s string
}

func IntOf(v uint64) Value { return Value{Kind: IntValue, i: v} }
func FloatOf(v float64) Value { return Value{Kind: FloatValue, f: v} }
func CharOf(v rune) Value { return Value{Kind: CharValue, i: uint64(v)} }
func StringOf(v string) Value { return Value{Kind: StringValue, s: v} }
func ByteOf(v byte) Value { return Value{Kind: ByteValue, i: uint64(v)} }
func RawOf(v string) Value { return Value{Kind: RawValue, s: v} }
func (v Value) IsAbsent() bool { return v.Kind == AbsentValue }
func (v Value) Int() uint64 { return v.i }
func (v Value) Float() float64 { return v.f }
func (v Value) Char() rune { return rune(v.i) }
func (v Value) Byte() byte { return byte(v.i) }
func (v Value) Text() string { return v.s }

// Interface returns the payload as a plain Go value, or nil when absent.
func (v Value) Interface() any {
	switch v.Kind {
	case IntValue:
		return v.i
	case FloatValue:
		return v.f
	case CharValue:
		return string(rune(v.i))
	case ByteValue:
		return byte(v.i)
	case StringValue, RawValue:
		return v.s
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return strconv.FormatUint(v.i, 10)
	case FloatValue:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case CharValue:
		return strconv.QuoteRune(rune(v.i))
	case ByteValue:
		return fmt.Sprintf("0x%02x", byte(v.i))
	case StringValue, RawValue:
		return strconv.Quote(v.s)
	default:
		return "<absent>"
	}
}
