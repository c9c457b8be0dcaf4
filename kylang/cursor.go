package kylang

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Cursor reads a source one extended grapheme cluster at a time.
// Columns count graphemes and restart at 1 after every newline grapheme.
type Cursor struct {
	source    *Source
	graphemes []string
	pos       int
	line      int
	column    int
}

func NewCursor(source *Source) *Cursor {
	return &Cursor{
		source:    source,
		graphemes: splitGraphemes(source.Content),
		line:      1,
		column:    1,
	}
}

func splitGraphemes(text string) []string {
	ret := make([]string, 0, len(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		ret = append(ret, cluster)
	}
	return ret
}

// "\r\n" is a single cluster
func isNewline(g string) bool {
	return g == "\n" || g == "\r\n"
}

func (c *Cursor) Source() *Source {
	return c.source
}

// Consume returns the grapheme under the cursor and advances.
// At end of input it returns "" and does not move.
func (c *Cursor) Consume() string {
	if c.EOF() {
		return ""
	}
	g := c.graphemes[c.pos]
	c.pos++
	if isNewline(g) {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	return g
}

func (c *Cursor) ConsumeExpect(expected string) (string, error) {
	pos := c.Pos()
	g := c.Consume()
	if g == "" {
		return "", newError(ErrUnexpectedEndOfInput, pos, "", fmt.Sprintf("expected %q", expected))
	}
	if g != expected {
		return "", newError(ErrUnexpectedGrapheme, pos, g, fmt.Sprintf("expected %q", expected))
	}
	return g, nil
}

func (c *Cursor) Peek() string {
	if c.EOF() {
		return ""
	}
	return c.graphemes[c.pos]
}

func (c *Cursor) PeekNext() string {
	if c.pos+1 >= len(c.graphemes) {
		return ""
	}
	return c.graphemes[c.pos+1]
}

func (c *Cursor) EOF() bool {
	return c.pos >= len(c.graphemes)
}

func (c *Cursor) ReadWhile(pred func(string) bool) string {
	var sb strings.Builder
	for !c.EOF() && pred(c.graphemes[c.pos]) {
		sb.WriteString(c.Consume())
	}
	return sb.String()
}

func (c *Cursor) Loc() string {
	return fmt.Sprintf("%d:%d", c.line, c.column)
}

func (c *Cursor) Pos() Pos {
	return Pos{
		Source: c.source,
		Line:   c.line,
		Column: c.column,
		Offset: c.pos,
	}
}

// Slice joins the graphemes in [from, to).
func (c *Cursor) Slice(from, to int) string {
	from = max(0, from)
	to = min(to, len(c.graphemes))
	if from >= to {
		return ""
	}
	return strings.Join(c.graphemes[from:to], "")
}
