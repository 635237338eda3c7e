package parser

import (
	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/lexer"
)

func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.peek() {
	case lexer.TokenDeclare:
		return p.parseDeclare()
	case lexer.TokenGet:
		return p.parseGet()
	case lexer.TokenPut:
		return p.parsePut()
	case lexer.TokenReturn:
		return p.parseReturn()
	case lexer.TokenWhile:
		return p.parseWhile()
	case lexer.TokenIf:
		return p.parseIf()
	case lexer.TokenLBrace:
		return p.parseBlock()
	case lexer.TokenIdent:
		switch p.peekAt(1) {
		case lexer.TokenAssign:
			return p.parseAssign()
		case lexer.TokenLParen:
			return p.parseCallStatement()
		default:
			tok := p.advance()
			return nil, errAt(p.current(), "expected '=' or '(' after '%s', got %s", tok.Lexeme, describe(p.current()))
		}
	default:
		tok := p.current()
		return nil, errAt(tok, "unexpected %s at start of statement", describe(tok))
	}
}

// parseDeclare handles both declaration forms:
//
//	declare name (= exp)? ;?
//	declare name(formals?) stmt
func (p *parser) parseDeclare() (ast.Statement, error) {
	p.advance() // consume 'declare'
	nameTok, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}

	if p.peek() == lexer.TokenLParen {
		p.advance()
		formals, err := p.parseFormals()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		body, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return ast.NewDeclareFunction(nameTok.Lexeme, formals, body), nil
	}

	var initializer ast.Expression
	if p.peek() == lexer.TokenAssign {
		p.advance()
		initializer, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	p.skipSemicolon()
	return ast.NewDeclareScalar(nameTok.Lexeme, initializer), nil
}

func (p *parser) parseFormals() ([]string, error) {
	if p.peek() == lexer.TokenRParen {
		return nil, nil
	}
	var formals []string
	for {
		tok, err := p.expect(lexer.TokenIdent)
		if err != nil {
			return nil, err
		}
		formals = append(formals, tok.Lexeme)
		if p.peek() != lexer.TokenComma {
			return formals, nil
		}
		p.advance()
	}
}

func (p *parser) parseGet() (ast.Statement, error) {
	p.advance() // consume 'get'
	nameTok, err := p.expect(lexer.TokenIdent)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return ast.NewGetStatement(nameTok.Lexeme), nil
}

func (p *parser) parsePut() (ast.Statement, error) {
	p.advance() // consume 'put'
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return ast.NewPutStatement(value), nil
}

func (p *parser) parseReturn() (ast.Statement, error) {
	p.advance() // consume 'return'
	var value ast.Expression
	if p.startsExpression() {
		var err error
		value, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	p.skipSemicolon()
	return ast.NewReturnStatement(value), nil
}

func (p *parser) parseWhile() (ast.Statement, error) {
	p.advance() // consume 'while'
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStatement(condition, body), nil
}

func (p *parser) parseIf() (ast.Statement, error) {
	p.advance() // consume 'if'
	if _, err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	var els ast.Statement
	if p.peek() == lexer.TokenElse {
		p.advance()
		els, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStatement(condition, then, els), nil
}

func (p *parser) parseBlock() (ast.Statement, error) {
	if _, err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	for p.peek() != lexer.TokenRBrace {
		if p.peek() == lexer.TokenEOF {
			tok := p.current()
			return nil, errAt(tok, "expected '}', got %s", describe(tok))
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'
	return ast.NewBlockStatement(stmts), nil
}

func (p *parser) parseAssign() (ast.Statement, error) {
	nameTok := p.advance()
	p.advance() // consume '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return ast.NewAssignStatement(nameTok.Lexeme, value), nil
}

func (p *parser) parseCallStatement() (ast.Statement, error) {
	nameTok := p.advance()
	p.advance() // consume '('
	args, err := p.parseActuals()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	p.skipSemicolon()
	return ast.NewCallStatement(nameTok.Lexeme, args), nil
}
