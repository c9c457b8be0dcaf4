// Package kylang is the front end of the Kythera language: a grapheme cursor,
// a lexer with one token of lookahead and a recursive-descent parser that
// turns source text into statement-level AST nodes.
package kylang

import (
	"os"
	"strings"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func ReadSource(path string) (*Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(path, string(content)), nil
}

// Line returns the 1-based line without its line terminator.
func (s *Source) Line(n int) (string, bool) {
	if n < 1 || n > len(s.Lines) {
		return "", false
	}
	return strings.TrimSuffix(s.Lines[n-1], "\r"), true
}
