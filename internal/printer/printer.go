package printer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/karupanerura/ccr/internal/lexer"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
)

type Format string

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
	YAMLFormat Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case TextFormat, JSONFormat, YAMLFormat:
		return f, nil
	case "":
		return TextFormat, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Quoted is a string that is always written as a double-quoted YAML scalar.
// Lexemes like "-", "--" or "?" are YAML indicators when left plain.
type Quoted string

func (q Quoted) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(q))), nil
}

type TokenView struct {
	Kind    Quoted `json:"kind" yaml:"kind"`
	Literal Quoted `json:"literal,omitempty" yaml:"literal,omitempty"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Text    Quoted `json:"text" yaml:"text"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
}

type DiagnosticView struct {
	Tag     Quoted `json:"tag" yaml:"tag"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Line    int    `json:"line" yaml:"line"`
	Message Quoted `json:"message,omitempty" yaml:"message,omitempty"`
}

type Report struct {
	Path        Quoted           `json:"path" yaml:"path"`
	Tokens      []TokenView      `json:"tokens" yaml:"tokens"`
	Diagnostics []DiagnosticView `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func NewReport(path, src string, tokens []lexer.Token, diagnostics []lexer.Diagnostic) *Report {
	return &Report{
		Path: Quoted(path),
		Tokens: lo.Map(tokens, func(t lexer.Token, _ int) TokenView {
			v := TokenView{
				Kind:  Quoted(t.Kind.String()),
				Start: t.Span.Start,
				End:   t.Span.End,
				Text:  Quoted(t.Text(src)),
			}
			if t.Kind == lexer.Literal {
				v.Literal = Quoted(t.Literal.String())
				v.Value = t.Value.Interface()
				if s, ok := v.Value.(string); ok {
					v.Value = Quoted(s)
				}
			}
			return v
		}),
		Diagnostics: lo.Map(diagnostics, func(d lexer.Diagnostic, _ int) DiagnosticView {
			v := DiagnosticView{
				Tag:   Quoted(d.Tag),
				Start: d.Span.Start,
				End:   d.Span.End,
				Line:  d.Line,
			}
			if d.Reason != nil {
				v.Message = Quoted(d.Reason.Error())
			}
			return v
		}),
	}
}

type Printer struct {
	Format Format
}

func (p *Printer) Print(w io.Writer, r *Report) error {
	switch p.Format {
	case TextFormat, "":
		return writeText(w, r)
	case JSONFormat:
		return writeJSON(w, r)
	case YAMLFormat:
		return writeYAML(w, r)
	default:
		panic(fmt.Sprintf("should not reach here: format=%s", p.Format))
	}
}

func writeText(w io.Writer, r *Report) error {
	for _, t := range r.Tokens {
		kind := t.Kind
		if t.Literal != "" {
			kind += "(" + t.Literal + ")"
		}
		var err error
		if t.Value != nil {
			_, err = fmt.Fprintf(w, "%s [%d,%d) %q = %v\n", kind, t.Start, t.End, t.Text, t.Value)
		} else {
			_, err = fmt.Fprintf(w, "%s [%d,%d) %q\n", kind, t.Start, t.End, t.Text)
		}
		if err != nil {
			return fmt.Errorf("fmt.Fprintf: %w", err)
		}
	}
	for _, d := range r.Diagnostics {
		msg := fmt.Sprintf("%s:%d: %s [%d,%d)", r.Path, d.Line, d.Tag, d.Start, d.End)
		if d.Message != "" {
			msg += ": " + string(d.Message)
		}
		if _, err := io.WriteString(w, msg+"\n"); err != nil {
			return fmt.Errorf("io.WriteString: %w", err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if isatty.IsTerminal(f.Fd()) {
			opts = append(opts, json.Colorize(json.DefaultColorScheme))
		}
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	return nil
}
