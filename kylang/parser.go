package kylang

import "fmt"

type Parser struct {
	lexer *Lexer
}

func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer: lexer,
	}
}

// Parse reads `expression ;` statements until the token stream is exhausted.
// The first error aborts the parse and no statements are returned.
func (p *Parser) Parse() ([]Node, error) {
	var program []Node
	for p.lexer.Peek() != nil {
		stmt, err := p.parseExp(true)
		if err != nil {
			return nil, err
		}
		if _, err := p.lexer.ConsumeExpect(Sym(SymSemicolon)); err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}
	return program, nil
}

func (p *Parser) parseExp(compose bool) (Node, error) {
	lhs, err := p.parseExpAtom()
	if err != nil {
		return nil, err
	}
	if !compose {
		return lhs, nil
	}
	return p.compose(lhs)
}

// compose extends lhs to the right while the next token continues it.
func (p *Parser) compose(lhs Node) (Node, error) {
	for {
		tok := p.lexer.Peek()
		if tok != nil && tok.Kind == TokenSymbol && IsBinaryOperator(tok.Symbol) {
			var err error
			lhs, err = p.makeBinary(lhs, 0)
			if err != nil {
				return nil, err
			}
			continue
		}
		next, ok, err := p.makePostfix(lhs)
		if err != nil {
			return nil, err
		}
		if !ok {
			return lhs, nil
		}
		lhs = next
	}
}

// makePostfix applies one call, field access or index to target.
func (p *Parser) makePostfix(target Node) (Node, bool, error) {
	tok := p.lexer.Peek()
	if tok == nil || tok.Kind != TokenSymbol {
		return target, false, nil
	}
	switch tok.Symbol {
	case SymLeftParen:
		node, err := p.makeCall(target)
		return node, true, err
	case SymDot:
		node, err := p.makeDotAccess(target)
		return node, true, err
	case SymLeftBracket:
		return nil, false, p.notYetImplemented(tok, "index access")
	}
	return target, false, nil
}

// parseOperand is an atom with its postfix chain, the right operand of a binary operator.
func (p *Parser) parseOperand() (Node, error) {
	node, err := p.parseExpAtom()
	if err != nil {
		return nil, err
	}
	for {
		next, ok, err := p.makePostfix(node)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		node = next
	}
}

func (p *Parser) makeBinary(lhs Node, minPrecedence int) (Node, error) {
	for {
		tok := p.lexer.Peek()
		if tok == nil || tok.Kind != TokenSymbol || !IsBinaryOperator(tok.Symbol) {
			return lhs, nil
		}
		precedence := precedences[tok.Symbol]
		if precedence <= minPrecedence {
			return lhs, nil
		}
		if _, err := p.lexer.Consume(); err != nil {
			return nil, err
		}

		operand, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		rhs, err := p.makeBinary(operand, precedence)
		if err != nil {
			return nil, err
		}

		lhs = &Binary{
			Pos: lhs.Position(),
			Lhs: lhs,
			Op:  tok.Symbol,
			Rhs: rhs,
		}
	}
}

func (p *Parser) makeCall(target Node) (Node, error) {
	if _, err := p.lexer.ConsumeExpect(Sym(SymLeftParen)); err != nil {
		return nil, err
	}
	args := []Node{}
	if err := p.commaList(func() error {
		arg, err := p.parseExp(true)
		if err != nil {
			return err
		}
		args = append(args, arg)
		return nil
	}); err != nil {
		return nil, err
	}
	return &Call{
		Pos:       target.Position(),
		Target:    target,
		Arguments: args,
	}, nil
}

// commaList parses `item (',' item)* ','? ')'` with the `(` already consumed.
func (p *Parser) commaList(item func() error) error {
	for {
		tok := p.lexer.Peek()
		if tok == nil {
			return p.endOfInput("`)`")
		}
		if tok.IsSymbol(SymRightParen) {
			_, err := p.lexer.Consume()
			return err
		}
		if err := item(); err != nil {
			return err
		}
		tok = p.lexer.Peek()
		if tok == nil {
			return p.endOfInput("`,` or `)`")
		}
		switch {
		case tok.IsSymbol(SymComma):
			if _, err := p.lexer.Consume(); err != nil {
				return err
			}
		case tok.IsSymbol(SymRightParen):
		default:
			return p.unexpected(tok, "`,` or `)`")
		}
	}
}

func (p *Parser) makeDotAccess(target Node) (Node, error) {
	if _, err := p.lexer.ConsumeExpect(Sym(SymDot)); err != nil {
		return nil, err
	}
	field, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	return &Access{
		Pos:    target.Position(),
		Target: target,
		Field:  field.Text,
	}, nil
}

func (p *Parser) parseExpAtom() (Node, error) {
	tok := p.lexer.Peek()
	if tok == nil {
		return nil, p.endOfInput("expression")
	}

	switch tok.Kind {

	case TokenSymbol:
		switch tok.Symbol {
		case SymLeftParen:
			return p.parseParen()
		case SymLeftBracket:
			return nil, p.notYetImplemented(tok, "list literal")
		case SymLeftBrace:
			return p.parseBrace()
		case SymBang:
			if _, err := p.lexer.Consume(); err != nil {
				return nil, err
			}
			operand, err := p.parseExpAtom()
			if err != nil {
				return nil, err
			}
			return &Unary{
				Pos:     tok.Span.Start,
				Op:      SymBang,
				Operand: operand,
			}, nil
		}

	case TokenKeyword:
		switch tok.Keyword {
		case KwTypeof:
			if _, err := p.lexer.Consume(); err != nil {
				return nil, err
			}
			operand, err := p.parseExp(true)
			if err != nil {
				return nil, err
			}
			return &Typeof{
				Pos:     tok.Span.Start,
				Operand: operand,
			}, nil
		case KwIf:
			return nil, p.notYetImplemented(tok, "if expression")
		case KwWhile:
			return nil, p.notYetImplemented(tok, "while expression")
		case KwConst, KwLet:
			return p.parseDeclaration()
		case KwReturn, KwBreak, KwContinue:
			return p.parseJump()
		}

	case TokenInt:
		return p.literal(IntValue(tok.Int))
	case TokenDouble:
		return p.literal(DoubleValue(tok.Double))
	case TokenString:
		return p.literal(StringValue(tok.Text))

	case TokenIdentifier:
		switch tok.Text {
		case "true":
			return p.literal(BoolValue(true))
		case "false":
			return p.literal(BoolValue(false))
		case "unit":
			return p.literal(UnitValue{})
		}
		if _, err := p.lexer.Consume(); err != nil {
			return nil, err
		}
		return &Identifier{
			Pos:  tok.Span.Start,
			Name: tok.Text,
		}, nil

	}

	return nil, p.unexpected(tok, "expression")
}

// literal consumes the current token as a literal carrying value.
func (p *Parser) literal(value Value) (Node, error) {
	tok, err := p.lexer.Consume()
	if err != nil {
		return nil, err
	}
	return &Literal{
		Pos:   tok.Span.Start,
		Value: value,
	}, nil
}

// parseParen resolves `()` functions, `(name: T, ...)` functions and
// parenthesized expressions by parsing one inner expression and looking at
// the token after it.
func (p *Parser) parseParen() (Node, error) {
	open, err := p.lexer.ConsumeExpect(Sym(SymLeftParen))
	if err != nil {
		return nil, err
	}

	tok := p.lexer.Peek()
	if tok == nil {
		return nil, p.endOfInput("expression or `)`")
	}
	if tok.IsSymbol(SymRightParen) {
		if _, err := p.lexer.Consume(); err != nil {
			return nil, err
		}
		return p.parseFnRest(open.Span.Start, nil, nil)
	}

	inner, err := p.parseExp(true)
	if err != nil {
		return nil, err
	}

	tok = p.lexer.Peek()
	if tok == nil {
		return nil, p.endOfInput("`:` or `)`")
	}
	switch {

	case tok.IsSymbol(SymColon):
		ident, ok := inner.(*Identifier)
		if !ok {
			return nil, newError(ErrUnexpectedToken, tok.Span.Start, tok.Raw,
				"parameter name must be an identifier, got "+inner.String())
		}
		return p.parseParams(open.Span.Start, ident)

	case tok.IsSymbol(SymRightParen):
		if _, err := p.lexer.Consume(); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.IsSymbol(SymComma):
		return nil, p.notYetImplemented(tok, "function type literal")

	}

	return nil, p.unexpected(tok, "`:` or `)`")
}

// parseParams continues a parameter list whose first name is already parsed.
func (p *Parser) parseParams(start Pos, first *Identifier) (Node, error) {
	names := []string{first.Name}
	var types []Node

	typ, err := p.parseParamType()
	if err != nil {
		return nil, err
	}
	types = append(types, typ)

	for {
		tok := p.lexer.Peek()
		if tok == nil {
			return nil, p.endOfInput("`,` or `)`")
		}
		if tok.IsSymbol(SymRightParen) {
			break
		}
		if !tok.IsSymbol(SymComma) {
			return nil, p.unexpected(tok, "`,` or `)`")
		}
		if _, err := p.lexer.Consume(); err != nil {
			return nil, err
		}
		if tok := p.lexer.Peek(); tok != nil && tok.IsSymbol(SymRightParen) {
			break
		}

		name, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		typ, err := p.parseParamType()
		if err != nil {
			return nil, err
		}
		names = append(names, name.Text)
		types = append(types, typ)
	}

	if _, err := p.lexer.ConsumeExpect(Sym(SymRightParen)); err != nil {
		return nil, err
	}
	return p.parseFnRest(start, names, types)
}

func (p *Parser) parseParamType() (Node, error) {
	if _, err := p.lexer.ConsumeExpect(Sym(SymColon)); err != nil {
		return nil, err
	}
	return p.parseExp(true)
}

// parseFnRest parses `=> { ... }` after a parameter list.
func (p *Parser) parseFnRest(start Pos, names []string, types []Node) (Node, error) {
	if _, err := p.lexer.ConsumeExpect(Sym(SymEqualGreater)); err != nil {
		return nil, err
	}
	body, err := p.parseBlockBody()
	if err != nil {
		return nil, err
	}
	return &Literal{
		Pos: start,
		Value: &FnValue{
			ParamNames: names,
			ParamTypes: types,
			Body:       body,
		},
	}, nil
}

func (p *Parser) parseBlockBody() (*Block, error) {
	open, err := p.lexer.ConsumeExpect(Sym(SymLeftBrace))
	if err != nil {
		return nil, err
	}
	body, err := p.parseStatements(nil)
	if err != nil {
		return nil, err
	}
	return &Block{
		Pos:  open.Span.Start,
		Body: body,
	}, nil
}

// parseStatements appends `statement ;` pairs to body until `}` and consumes the `}`.
func (p *Parser) parseStatements(body []Node) ([]Node, error) {
	for {
		tok := p.lexer.Peek()
		if tok == nil {
			return nil, p.endOfInput("`}`")
		}
		if tok.IsSymbol(SymRightBrace) {
			if _, err := p.lexer.Consume(); err != nil {
				return nil, err
			}
			return body, nil
		}
		stmt, err := p.parseExp(true)
		if err != nil {
			return nil, err
		}
		if _, err := p.lexer.ConsumeExpect(Sym(SymSemicolon)); err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

// parseBrace resolves struct values, struct types and code blocks.
// A bare identifier followed by `=` or `:` starts a struct form; anything
// else is composed into the block's first statement, which must end in `;`.
func (p *Parser) parseBrace() (Node, error) {
	open, err := p.lexer.ConsumeExpect(Sym(SymLeftBrace))
	if err != nil {
		return nil, err
	}

	first, err := p.parseExpAtom()
	if err != nil {
		return nil, err
	}

	if ident, ok := first.(*Identifier); ok {
		if tok := p.lexer.Peek(); tok != nil {
			switch {
			case tok.IsSymbol(SymEqual):
				return p.parseStructFields(open.Span.Start, ident, SymEqual)
			case tok.IsSymbol(SymColon):
				return p.parseStructFields(open.Span.Start, ident, SymColon)
			}
		}
	}

	first, err = p.compose(first)
	if err != nil {
		return nil, err
	}
	tok := p.lexer.Peek()
	if tok == nil {
		return nil, p.endOfInput("`=`, `:` or `;`")
	}
	if !tok.IsSymbol(SymSemicolon) {
		return nil, p.unexpected(tok, "`=`, `:` or `;`")
	}
	if _, err := p.lexer.Consume(); err != nil {
		return nil, err
	}

	body, err := p.parseStatements([]Node{first})
	if err != nil {
		return nil, err
	}
	return &Block{
		Pos:  open.Span.Start,
		Body: body,
	}, nil
}

// parseStructFields parses `name sep expr (',' name sep expr)* ','? '}'`,
// the first name already parsed.
func (p *Parser) parseStructFields(start Pos, first *Identifier, sep Symbol) (Node, error) {
	fields := make(map[string]Node)
	name := first.Name
	namePos := first.Pos

	for {
		if _, ok := fields[name]; ok {
			return nil, newError(ErrUnexpectedToken, namePos, name, "duplicate field "+name)
		}
		if _, err := p.lexer.ConsumeExpect(Sym(sep)); err != nil {
			return nil, err
		}
		value, err := p.parseExp(true)
		if err != nil {
			return nil, err
		}
		fields[name] = value

		tok := p.lexer.Peek()
		if tok == nil {
			return nil, p.endOfInput("`,` or `}`")
		}
		if tok.IsSymbol(SymRightBrace) {
			break
		}
		if !tok.IsSymbol(SymComma) {
			return nil, p.unexpected(tok, "`,` or `}`")
		}
		if _, err := p.lexer.Consume(); err != nil {
			return nil, err
		}
		if tok := p.lexer.Peek(); tok != nil && tok.IsSymbol(SymRightBrace) {
			break
		}

		ident, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		name = ident.Text
		namePos = ident.Span.Start
	}

	if _, err := p.lexer.ConsumeExpect(Sym(SymRightBrace)); err != nil {
		return nil, err
	}

	var value Value
	if sep == SymEqual {
		value = StructValue(fields)
	} else {
		value = StructTypeValue(fields)
	}
	return &Literal{
		Pos:   start,
		Value: value,
	}, nil
}

func (p *Parser) parseDeclaration() (Node, error) {
	kw, err := p.lexer.Consume()
	if err != nil {
		return nil, err
	}
	id, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.lexer.ConsumeExpect(Sym(SymEqual)); err != nil {
		return nil, err
	}
	value, err := p.parseExp(true)
	if err != nil {
		return nil, err
	}
	return &Declaration{
		Pos:   kw.Span.Start,
		Op:    kw.Keyword,
		ID:    id.Text,
		Value: value,
	}, nil
}

func (p *Parser) parseJump() (Node, error) {
	kw, err := p.lexer.Consume()
	if err != nil {
		return nil, err
	}

	var result Node
	if tok := p.lexer.Peek(); tok != nil && tok.IsSymbol(SymSemicolon) {
		result = &Literal{
			Pos:   tok.Span.Start,
			Value: UnitValue{},
		}
	} else {
		result, err = p.parseExp(true)
		if err != nil {
			return nil, err
		}
	}

	return &Jump{
		Pos:    kw.Span.Start,
		Op:     kw.Keyword,
		Result: result,
	}, nil
}

func (p *Parser) expectIdentifier() (*Token, error) {
	tok := p.lexer.Peek()
	if tok == nil {
		return nil, p.endOfInput("identifier")
	}
	if tok.Kind != TokenIdentifier {
		return nil, p.unexpected(tok, "identifier")
	}
	return p.lexer.Consume()
}

func (p *Parser) unexpected(tok *Token, want string) error {
	return newError(ErrUnexpectedToken, tok.Span.Start, tok.Raw,
		fmt.Sprintf("expected %s, got %s", want, tok.Describe()))
}

func (p *Parser) endOfInput(want string) error {
	return newError(ErrUnexpectedEndOfInput, p.lexer.Pos(), "", "expected "+want)
}

func (p *Parser) notYetImplemented(tok *Token, what string) error {
	return newError(ErrNotYetImplemented, tok.Span.Start, tok.Raw, what)
}
