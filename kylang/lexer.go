package kylang

import (
	"iter"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lexer holds exactly one token of lookahead. A nil current token after
// construction or Consume means the input is exhausted; that state is final.
type Lexer struct {
	cursor   *Cursor
	current  *Token
	trailing string
}

func NewLexer(cursor *Cursor) (*Lexer, error) {
	l := &Lexer{
		cursor: cursor,
	}
	if err := l.advance(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Lexer) Peek() *Token {
	return l.current
}

// Consume returns the buffered token and refills the buffer.
func (l *Lexer) Consume() (*Token, error) {
	tok := l.current
	if tok == nil {
		return nil, nil
	}
	l.current = nil
	if err := l.advance(); err != nil {
		return nil, err
	}
	return tok, nil
}

func (l *Lexer) ConsumeExpect(expected Token) (*Token, error) {
	tok := l.current
	if tok == nil {
		return nil, newError(ErrUnexpectedEndOfInput, l.Pos(), "", "expected "+expected.Describe())
	}
	if !tok.Equal(expected) {
		return nil, newError(ErrUnexpectedToken, tok.Span.Start, tok.Raw,
			"expected "+expected.Describe()+", got "+tok.Describe())
	}
	return l.Consume()
}

// Pos is the cursor position, after the buffered token.
func (l *Lexer) Pos() Pos {
	return l.cursor.Pos()
}

// Trailing returns the trivia after the last token, once exhausted.
func (l *Lexer) Trailing() string {
	return l.trailing
}

func (l *Lexer) All() iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		for l.current != nil {
			tok, err := l.Consume()
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

func (l *Lexer) advance() error {
	triviaStart := l.cursor.Pos().Offset
	if err := l.skipTrivia(); err != nil {
		return err
	}
	start := l.cursor.Pos()
	trivia := l.cursor.Slice(triviaStart, start.Offset)

	if l.cursor.EOF() {
		l.current = nil
		l.trailing = trivia
		return nil
	}

	tok, err := l.scan()
	if err != nil {
		return err
	}
	end := l.cursor.Pos()
	tok.Span = Span{
		Start: start,
		End:   end,
	}
	tok.Raw = l.cursor.Slice(start.Offset, end.Offset)
	tok.Trivia = trivia
	l.current = tok
	return nil
}

func (l *Lexer) skipTrivia() error {
	for !l.cursor.EOF() {
		g := l.cursor.Peek()
		switch {

		case isWhitespace(g):
			l.cursor.ReadWhile(isWhitespace)

		case g == "/" && l.cursor.PeekNext() == "/":
			l.cursor.ReadWhile(func(g string) bool {
				return !isNewline(g)
			})
			// the newline, if any
			l.cursor.Consume()

		case g == "/" && l.cursor.PeekNext() == "*":
			if err := l.skipBlockComment(); err != nil {
				return err
			}

		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipBlockComment() error {
	start := l.cursor.Pos()
	l.cursor.Consume()
	l.cursor.Consume()
	for {
		if l.cursor.EOF() {
			return newError(ErrUnterminatedLiteral, start, "/*", "block comment")
		}
		if l.cursor.Peek() == "*" && l.cursor.PeekNext() == "/" {
			l.cursor.Consume()
			l.cursor.Consume()
			return nil
		}
		l.cursor.Consume()
	}
}

func (l *Lexer) scan() (*Token, error) {
	g := l.cursor.Peek()

	switch {
	case g == `"`:
		return l.scanString()
	case isDigit(g):
		return l.scanNumber()
	case isWordStart(g):
		return l.scanWord(), nil
	}

	if sym, ok := operatorSymbols[g]; ok {
		l.cursor.Consume()
		if compound, ok := compoundSymbols[sym][l.cursor.Peek()]; ok {
			l.cursor.Consume()
			sym = compound
		}
		return &Token{
			Kind:   TokenSymbol,
			Symbol: sym,
		}, nil
	}

	if sym, ok := punctuationSymbols[g]; ok {
		l.cursor.Consume()
		return &Token{
			Kind:   TokenSymbol,
			Symbol: sym,
		}, nil
	}

	return nil, newError(ErrUnexpectedGrapheme, l.cursor.Pos(), g, "")
}

// escapes are not processed
func (l *Lexer) scanString() (*Token, error) {
	start := l.cursor.Pos()
	l.cursor.Consume()
	body := l.cursor.ReadWhile(func(g string) bool {
		return g != `"`
	})
	if l.cursor.EOF() {
		return nil, newError(ErrUnterminatedLiteral, start, `"`, "string")
	}
	if _, err := l.cursor.ConsumeExpect(`"`); err != nil {
		return nil, err
	}
	return &Token{
		Kind: TokenString,
		Text: body,
	}, nil
}

func (l *Lexer) scanNumber() (*Token, error) {
	start := l.cursor.Pos()
	dots := 0
	text := l.cursor.ReadWhile(func(g string) bool {
		if g == "." {
			dots++
			return true
		}
		return isDigit(g)
	})

	if dots > 1 {
		return nil, newError(ErrMalformedNumber, start, text, "more than one decimal point")
	}

	if dots == 1 {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, newError(ErrMalformedNumber, start, text, err.Error())
		}
		return &Token{
			Kind:   TokenDouble,
			Double: f,
		}, nil
	}

	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, newError(ErrMalformedNumber, start, text, err.Error())
	}
	return &Token{
		Kind: TokenInt,
		Int:  int32(i),
	}, nil
}

func (l *Lexer) scanWord() *Token {
	text := l.cursor.ReadWhile(isWordPart)
	if kw, ok := keywords[text]; ok {
		return &Token{
			Kind:    TokenKeyword,
			Keyword: kw,
		}
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: text,
	}
}

func isWhitespace(g string) bool {
	if g == "" {
		return false
	}
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

func isDigit(g string) bool {
	return len(g) == 1 && g[0] >= '0' && g[0] <= '9'
}

func isWordStart(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return r == '_' || unicode.IsLetter(r)
}

func isWordPart(g string) bool {
	r, _ := utf8.DecodeRuneInString(g)
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
