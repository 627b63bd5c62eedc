package main

import (
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp"
	"github.com/karupanerura/ccr/internal/config"
	"github.com/karupanerura/ccr/internal/lexer"
	"github.com/karupanerura/ccr/internal/printer"
	"github.com/karupanerura/ccr/internal/source"
	"github.com/samber/lo"
)

type Option struct {
	Config      string   `short:"c" long:"config" description:"[OPTIONAL] YAML config file" required:"false"`
	Format      string   `short:"o" long:"format" description:"[OPTIONAL] Output format (text, json, yaml)" required:"false"`
	Whitespace  bool     `long:"whitespace" description:"[OPTIONAL] Emit whitespace tokens"`
	SkipTrivia  bool     `long:"skip-trivia" description:"[OPTIONAL] Omit whitespace and comment tokens from the output"`
	IdentDigits bool     `long:"ident-digits" description:"[OPTIONAL] Allow digits after the first character of identifiers"`
	CPunct      bool     `long:"c-punct" description:"[OPTIONAL] Recognize ':' and '%' tokens"`
	Only        []string `long:"only" description:"[OPTIONAL] Print only tokens of the kind (repeatable)"`
	Debug       bool     `long:"debug" description:"[OPTIONAL] Dump scanner state to stderr"`
	Args        struct {
		File string `positional-arg-name:"FILE" description:"Source file to scan"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(os.Stdout)
			return 1
		}
	}
	if len(rest) != 0 {
		parser.WriteHelp(os.Stdout)
		return 1
	}

	cfg, err := loadConfig(&opt)
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	format, err := printer.ParseFormat(cfg.Format)
	if err != nil {
		log.Printf("invalid format: %v", err)
		return 1
	}
	only, err := cfg.OnlyKinds()
	if err != nil {
		log.Printf("invalid --only: %v", err)
		return 1
	}

	file, err := source.Load(opt.Args.File)
	if err != nil {
		log.Printf("failed to load source: %v", err)
		return 1
	}

	var scanner *lexer.Scanner
	if opt.Debug {
		scanner = lexer.NewScannerWithDebugOutput(file.Text, cfg.LexerOptions())
	} else {
		scanner = lexer.NewScanner(file.Text, cfg.LexerOptions())
	}
	stream := scanner.Tokenize()

	tokens := stream.Tokens()
	if cfg.SkipTrivia {
		tokens = stream.Significant()
	}
	if len(only) != 0 {
		tokens = lo.Filter(tokens, func(t lexer.Token, _ int) bool {
			return lo.Contains(only, t.Kind)
		})
	}
	if opt.Debug {
		pp.Fprintln(os.Stderr, cfg)
		pp.Fprintln(os.Stderr, scanner.Diagnostics())
	}

	p := &printer.Printer{Format: format}
	if err = p.Print(stdout, printer.NewReport(file.Path, file.Text, tokens, scanner.Diagnostics())); err != nil {
		log.Printf("failed to print tokens: %v", err)
		return 1
	}
	return 0
}

// loadConfig merges the config file, if any, with the command line.
// --format and --only replace the file's values; bool flags can only turn an
// option on, so a setting enabled in the file stays enabled.
func loadConfig(opt *Option) (*config.Config, error) {
	cfg := &config.Config{}
	if opt.Config != "" {
		var err error
		cfg, err = config.Load(opt.Config)
		if err != nil {
			return nil, err
		}
	}

	if opt.Format != "" {
		cfg.Format = opt.Format
	}
	if len(opt.Only) != 0 {
		cfg.Only = opt.Only
	}
	cfg.Whitespace = cfg.Whitespace || opt.Whitespace
	cfg.SkipTrivia = cfg.SkipTrivia || opt.SkipTrivia
	cfg.IdentDigits = cfg.IdentDigits || opt.IdentDigits
	cfg.CPunct = cfg.CPunct || opt.CPunct
	return cfg, nil
}
