package kylang

import "fmt"

type Pos struct {
	Source *Source
	Line   int
	Column int
	// grapheme index
	Offset int
}

func (p Pos) String() string {
	if p.Source != nil && p.Source.Name != "" {
		return fmt.Sprintf("%s:%d:%d", p.Source.Name, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Span struct {
	Start Pos
	End   Pos
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}
