package config

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/karupanerura/ccr/internal/lexer"
	"github.com/mitchellh/mapstructure"
)

type Config struct {
	Format      string   `mapstructure:"format"`
	Whitespace  bool     `mapstructure:"whitespace"`
	SkipTrivia  bool     `mapstructure:"skip_trivia"`
	IdentDigits bool     `mapstructure:"ident_digits"`
	CPunct      bool     `mapstructure:"c_punct"`
	Only        []string `mapstructure:"only"`
}

func (c *Config) LexerOptions() lexer.Options {
	return lexer.Options{
		EmitWhitespace: c.Whitespace,
		IdentDigits:    c.IdentDigits,
		CPunct:         c.CPunct,
	}
}

// OnlyKinds resolves the Only names into token kinds.
func (c *Config) OnlyKinds() ([]lexer.Kind, error) {
	kinds := make([]lexer.Kind, 0, len(c.Only))
	for _, name := range c.Only {
		k, err := lexer.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func Load(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	return Parse(f)
}

func Parse(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	var m map[string]any
	if err = yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	var c Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &c,
	})
	if err != nil {
		return nil, fmt.Errorf("mapstructure.NewDecoder: %w", err)
	}
	if err = decoder.Decode(m); err != nil {
		return nil, fmt.Errorf("mapstructure.Decode: %w", err)
	}
	return &c, nil
}
