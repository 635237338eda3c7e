package parser

import (
	"strconv"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/lexer"
)

// Precedence, loosest to tightest: comparison (== <=), additive (+ -),
// multiplicative (* /), unary (- not), primary. Binary operators
// associate left.

func (p *parser) parseExpression() (ast.Expression, error) {
	return p.parseComparison()
}

func (p *parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for p.peek() == lexer.TokenEqEq || p.peek() == lexer.TokenLtEq {
		opTok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.BinaryOperator(opTok.Lexeme), left, right)
	}
	return left, nil
}

func (p *parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek() == lexer.TokenPlus || p.peek() == lexer.TokenMinus {
		opTok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.BinaryOperator(opTok.Lexeme), left, right)
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek() == lexer.TokenStar || p.peek() == lexer.TokenSlash {
		opTok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(ast.BinaryOperator(opTok.Lexeme), left, right)
	}
	return left, nil
}

func (p *parser) parseUnary() (ast.Expression, error) {
	switch p.peek() {
	case lexer.TokenMinus:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.UnaryOperatorNegate, operand), nil
	case lexer.TokenNot:
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(ast.UnaryOperatorNot, operand), nil
	default:
		return p.parsePrimary()
	}
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()
	switch tok.Type {
	case lexer.TokenNumber:
		p.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, errAt(tok, "integer literal %s out of range", tok.Lexeme)
		}
		return ast.NewIntegerLiteral(value), nil
	case lexer.TokenIdent:
		if p.peekAt(1) == lexer.TokenLParen {
			p.advance() // consume name
			p.advance() // consume '('
			args, err := p.parseActuals()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.TokenRParen); err != nil {
				return nil, err
			}
			return ast.NewCallExpression(tok.Lexeme, args), nil
		}
		p.advance()
		return ast.NewIdentifier(tok.Lexeme), nil
	case lexer.TokenLParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, errAt(tok, "unexpected %s, want an expression", describe(tok))
	}
}

func (p *parser) parseActuals() ([]ast.Expression, error) {
	if p.peek() == lexer.TokenRParen {
		return nil, nil
	}
	var args []ast.Expression
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.peek() != lexer.TokenComma {
			return args, nil
		}
		p.advance()
	}
}
