package kylang

import "fmt"

type Symbol uint8

const (
	SymInvalid Symbol = iota

	SymPlus
	SymMinus
	SymStar
	SymSlash
	SymPercent
	SymBar
	SymAnd
	SymEqual
	SymBang
	SymLess
	SymGreater

	SymPlusEqual
	SymMinusEqual
	SymStarEqual
	SymSlashEqual
	SymPercentEqual
	SymBarBar
	SymAndAnd
	SymEqualEqual
	SymBangEqual
	SymLessEqual
	SymGreaterEqual
	SymEqualGreater

	SymDot
	SymLeftParen
	SymRightParen
	SymLeftBrace
	SymRightBrace
	SymLeftBracket
	SymRightBracket
	SymComma
	SymSemicolon
	SymColon

	numSymbols
)

var symbolNames = [numSymbols]struct {
	name string
	text string
}{
	SymInvalid: {"Invalid", ""},

	SymPlus:    {"Plus", "+"},
	SymMinus:   {"Minus", "-"},
	SymStar:    {"Star", "*"},
	SymSlash:   {"Slash", "/"},
	SymPercent: {"Percent", "%"},
	SymBar:     {"Bar", "|"},
	SymAnd:     {"And", "&"},
	SymEqual:   {"Equal", "="},
	SymBang:    {"Bang", "!"},
	SymLess:    {"Less", "<"},
	SymGreater: {"Greater", ">"},

	SymPlusEqual:    {"PlusEqual", "+="},
	SymMinusEqual:   {"MinusEqual", "-="},
	SymStarEqual:    {"StarEqual", "*="},
	SymSlashEqual:   {"SlashEqual", "/="},
	SymPercentEqual: {"PercentEqual", "%="},
	SymBarBar:       {"BarBar", "||"},
	SymAndAnd:       {"AndAnd", "&&"},
	SymEqualEqual:   {"EqualEqual", "=="},
	SymBangEqual:    {"BangEqual", "!="},
	SymLessEqual:    {"LessEqual", "<="},
	SymGreaterEqual: {"GreaterEqual", ">="},
	SymEqualGreater: {"EqualGreater", "=>"},

	SymDot:          {"Dot", "."},
	SymLeftParen:    {"LeftParen", "("},
	SymRightParen:   {"RightParen", ")"},
	SymLeftBrace:    {"LeftBrace", "{"},
	SymRightBrace:   {"RightBrace", "}"},
	SymLeftBracket:  {"LeftBracket", "["},
	SymRightBracket: {"RightBracket", "]"},
	SymComma:        {"Comma", ","},
	SymSemicolon:    {"Semicolon", ";"},
	SymColon:        {"Colon", ":"},
}

func (s Symbol) String() string {
	if s >= numSymbols {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
	return symbolNames[s].name
}

// Text returns the source spelling.
func (s Symbol) Text() string {
	if s >= numSymbols {
		return ""
	}
	return symbolNames[s].text
}

// graphemes that may start a compound symbol
var operatorSymbols = map[string]Symbol{
	"+": SymPlus,
	"-": SymMinus,
	"*": SymStar,
	"/": SymSlash,
	"%": SymPercent,
	"|": SymBar,
	"&": SymAnd,
	"=": SymEqual,
	"!": SymBang,
	"<": SymLess,
	">": SymGreater,
}

// bare symbol -> follow-up grapheme -> compound symbol
var compoundSymbols = map[Symbol]map[string]Symbol{
	SymPlus:    {"=": SymPlusEqual},
	SymMinus:   {"=": SymMinusEqual},
	SymStar:    {"=": SymStarEqual},
	SymSlash:   {"=": SymSlashEqual},
	SymPercent: {"=": SymPercentEqual},
	SymBar:     {"|": SymBarBar},
	SymAnd:     {"&": SymAndAnd},
	SymEqual: {
		"=": SymEqualEqual,
		">": SymEqualGreater,
	},
	SymBang:    {"=": SymBangEqual},
	SymLess:    {"=": SymLessEqual},
	SymGreater: {"=": SymGreaterEqual},
}

var punctuationSymbols = map[string]Symbol{
	".": SymDot,
	"(": SymLeftParen,
	")": SymRightParen,
	"{": SymLeftBrace,
	"}": SymRightBrace,
	"[": SymLeftBracket,
	"]": SymRightBracket,
	",": SymComma,
	";": SymSemicolon,
	":": SymColon,
}
