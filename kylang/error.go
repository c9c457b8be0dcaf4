package kylang

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	ErrUnexpectedGrapheme   = errors.New("unexpected grapheme")
	ErrUnterminatedLiteral  = errors.New("unterminated literal")
	ErrMalformedNumber      = errors.New("malformed number")
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrNotYetImplemented    = errors.New("not yet implemented")
)

var errorKinds = []error{
	ErrUnexpectedGrapheme,
	ErrUnterminatedLiteral,
	ErrMalformedNumber,
	ErrUnexpectedToken,
	ErrUnexpectedEndOfInput,
	ErrNotYetImplemented,
}

// Kind returns the sentinel error err wraps, or nil.
func Kind(err error) error {
	for _, kind := range errorKinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

type PosError struct {
	Err error
	Pos Pos
	// offending grapheme or token text
	Near string
}

func (p PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(p.Err.Error())
	if p.Near != "" {
		sb.WriteString(fmt.Sprintf(" near %q", p.Near))
	}
	sb.WriteString(" at ")
	sb.WriteString(p.Pos.String())

	if p.Pos.Source == nil {
		return sb.String()
	}
	line, ok := p.Pos.Source.Line(p.Pos.Line)
	if !ok {
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(line)
	sb.WriteString("\n")

	// caret
	col := p.Pos.Column - 1
	for i, g := range splitGraphemes(line) {
		if i >= col {
			break
		}
		if g == "\t" {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.StringWidth(g)))
	}
	sb.WriteString("^")

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

func newError(kind error, pos Pos, near string, detail string) error {
	err := kind
	if detail != "" {
		err = fmt.Errorf("%w: %s", kind, detail)
	}
	return PosError{
		Err:  err,
		Pos:  pos,
		Near: near,
	}
}
