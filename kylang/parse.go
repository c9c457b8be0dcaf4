package kylang

// LanguageVersion is the version of the Kythera grammar this package accepts.
const LanguageVersion = "0.1.0"

func Parse(source *Source) ([]Node, error) {
	lexer, err := NewLexer(NewCursor(source))
	if err != nil {
		return nil, err
	}
	return NewParser(lexer).Parse()
}

func ParseString(name string, text string) ([]Node, error) {
	return Parse(NewSource(name, text))
}

// Tokenize lexes the whole source. Tokens before a lexing error are returned along with it.
func Tokenize(source *Source) ([]*Token, error) {
	lexer, err := NewLexer(NewCursor(source))
	if err != nil {
		return nil, err
	}
	var tokens []*Token
	for tok, err := range lexer.All() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
