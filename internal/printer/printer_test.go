package printer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/ccr/internal/lexer"
	"github.com/karupanerura/ccr/internal/printer"
)

func newReport(src string) *printer.Report {
	stream, diagnostics := lexer.Tokenize(src, lexer.Options{})
	return printer.NewReport("test.c", src, stream.Tokens(), diagnostics)
}

func TestPrintText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer.Printer{Format: printer.TextFormat}
	if err := p.Print(&buf, newReport(`a 0x1A "s" /*`)); err != nil {
		t.Fatal(err)
	}

	expected := strings.Join([]string{
		`Ident [0,1) "a"`,
		`Literal(Int{radix: hexadecimal}) [2,6) "0x1A" = 26`,
		`Literal(Str) [7,10) "\"s\"" = s`,
		`BlockComment [11,13) "/*"`,
		`EOF [13,13) ""`,
		`test.c:1: UnterminatedBlockComment [11,13)`,
		``,
	}, "\n")
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer.Printer{Format: printer.JSONFormat}
	if err := p.Print(&buf, newReport("x<=3.5")); err != nil {
		t.Fatal(err)
	}

	var got printer.Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	expected := printer.Report{
		Path: "test.c",
		Tokens: []printer.TokenView{
			{Kind: "Ident", Start: 0, End: 1, Text: "x"},
			{Kind: "LtEqual", Start: 1, End: 3, Text: "<="},
			{Kind: "Literal", Literal: "Float{radix: decimal}", Start: 3, End: 6, Text: "3.5", Value: 3.5},
			{Kind: "EOF", Start: 6, End: 6, Text: ""},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := &printer.Printer{Format: printer.YAMLFormat}
	if err := p.Print(&buf, newReport(`a - b -- c ? "- x" /*`)); err != nil {
		t.Fatal(err)
	}

	var got printer.Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, buf.String())
	}
	expected := printer.Report{
		Path: "test.c",
		Tokens: []printer.TokenView{
			{Kind: "Ident", Start: 0, End: 1, Text: "a"},
			{Kind: "Minus", Start: 2, End: 3, Text: "-"},
			{Kind: "Ident", Start: 4, End: 5, Text: "b"},
			{Kind: "MinusMinus", Start: 6, End: 8, Text: "--"},
			{Kind: "Ident", Start: 9, End: 10, Text: "c"},
			{Kind: "Unknown", Start: 11, End: 12, Text: "?"},
			{Kind: "Literal", Literal: "Str", Start: 13, End: 18, Text: `"- x"`, Value: "- x"},
			{Kind: "BlockComment", Start: 19, End: 21, Text: "/*"},
			{Kind: "EOF", Start: 21, End: 21, Text: ""},
		},
		Diagnostics: []printer.DiagnosticView{
			{Tag: "UnterminatedBlockComment", Start: 19, End: 21, Line: 1},
		},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s\n%s", diff, buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in        string
		expected  printer.Format
		expectErr bool
	}{
		{in: "", expected: printer.TextFormat},
		{in: "text", expected: printer.TextFormat},
		{in: "json", expected: printer.JSONFormat},
		{in: "yaml", expected: printer.YAMLFormat},
		{in: "xml", expectErr: true},
	} {
		got, err := printer.ParseFormat(tt.in)
		if tt.expectErr {
			if err == nil {
				t.Errorf("%q: should be error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.expected {
			t.Errorf("%q: expect to %s but got %s", tt.in, tt.expected, got)
		}
	}
}
