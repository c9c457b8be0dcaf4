package kylang

import (
	"fmt"
	"strconv"
)

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenString
	TokenSymbol
	TokenInt
	TokenDouble
	TokenKeyword
	TokenIdentifier
)

func (k TokenKind) String() string {
	switch k {
	case TokenString:
		return "Str"
	case TokenSymbol:
		return "Sym"
	case TokenInt:
		return "Int"
	case TokenDouble:
		return "Double"
	case TokenKeyword:
		return "Kw"
	case TokenIdentifier:
		return "Id"
	}
	return "Invalid"
}

// Token is a closed variant; Kind selects which payload field is meaningful.
type Token struct {
	Kind TokenKind

	// string body for TokenString, name for TokenIdentifier
	Text    string
	Symbol  Symbol
	Keyword Keyword
	Int     int32
	Double  float64

	Span Span
	// source text of the token
	Raw string
	// whitespace and comments skipped before the token
	Trivia string
}

func Str(text string) Token {
	return Token{Kind: TokenString, Text: text}
}

func Sym(sym Symbol) Token {
	return Token{Kind: TokenSymbol, Symbol: sym}
}

func Int(i int32) Token {
	return Token{Kind: TokenInt, Int: i}
}

func Double(f float64) Token {
	return Token{Kind: TokenDouble, Double: f}
}

func Kw(kw Keyword) Token {
	return Token{Kind: TokenKeyword, Keyword: kw}
}

func Id(name string) Token {
	return Token{Kind: TokenIdentifier, Text: name}
}

// Equal compares kind and payload, ignoring position and trivia.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case TokenString, TokenIdentifier:
		return t.Text == other.Text
	case TokenSymbol:
		return t.Symbol == other.Symbol
	case TokenInt:
		return t.Int == other.Int
	case TokenDouble:
		return t.Double == other.Double
	case TokenKeyword:
		return t.Keyword == other.Keyword
	}
	return true
}

func (t Token) IsSymbol(sym Symbol) bool {
	return t.Kind == TokenSymbol && t.Symbol == sym
}

func (t Token) IsKeyword(kw Keyword) bool {
	return t.Kind == TokenKeyword && t.Keyword == kw
}

func (t Token) String() string {
	switch t.Kind {
	case TokenString:
		return fmt.Sprintf("Str(%q)", t.Text)
	case TokenSymbol:
		return "Sym(" + t.Symbol.String() + ")"
	case TokenInt:
		return "Int(" + strconv.FormatInt(int64(t.Int), 10) + ")"
	case TokenDouble:
		return "Double(" + formatDouble(t.Double) + ")"
	case TokenKeyword:
		return "Kw(" + t.Keyword.String() + ")"
	case TokenIdentifier:
		return "Id(" + t.Text + ")"
	}
	return "Invalid"
}

// Describe renders the token for diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case TokenString:
		return fmt.Sprintf("string %q", t.Text)
	case TokenSymbol:
		return "`" + t.Symbol.Text() + "`"
	case TokenInt:
		return "integer " + strconv.FormatInt(int64(t.Int), 10)
	case TokenDouble:
		return "number " + formatDouble(t.Double)
	case TokenKeyword:
		return "keyword `" + t.Keyword.Text() + "`"
	case TokenIdentifier:
		return "identifier `" + t.Text + "`"
	}
	return "invalid token"
}

func formatDouble(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
