package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var ErrInvalidEncoding = errors.New("source is not valid UTF-8")

// File is a fully loaded source file. Tokens scanned from Text refer to it by
// byte offsets, so it must outlive them.
type File struct {
	Path string
	Text string
}

func Load(filePath string) (*File, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	file, err := Read(filePath, f)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func Read(name string, r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll: %w", err)
	}
	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidEncoding)
	}
	return &File{Path: name, Text: string(b)}, nil
}
