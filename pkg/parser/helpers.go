package parser

import (
	"fmt"

	"github.com/shubham1882003/plipy/pkg/lexer"
)

func (p *parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *parser) peek() lexer.Type {
	return p.current().Type
}

func (p *parser) peekAt(offset int) lexer.Type {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return lexer.TokenEOF
	}
	return p.tokens[idx].Type
}

func (p *parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) expect(typ lexer.Type) (lexer.Token, error) {
	tok := p.current()
	if tok.Type != typ {
		return tok, errAt(tok, "expected %s, got %s", typ, describe(tok))
	}
	return p.advance(), nil
}

// skipSemicolon consumes one optional ';' after a simple statement.
func (p *parser) skipSemicolon() {
	if p.peek() == lexer.TokenSemicolon {
		p.advance()
	}
}

// startsExpression reports whether the current token can begin an
// expression, which disambiguates a bare return from return-with-value.
func (p *parser) startsExpression() bool {
	switch p.peek() {
	case lexer.TokenNumber, lexer.TokenIdent, lexer.TokenLParen, lexer.TokenMinus, lexer.TokenNot:
		return true
	default:
		return false
	}
}

func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.TokenEOF:
		return "end of input"
	case lexer.TokenIllegal:
		return fmt.Sprintf("illegal character '%s'", tok.Lexeme)
	default:
		return fmt.Sprintf("'%s'", tok.Lexeme)
	}
}

func errAt(tok lexer.Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}
