// Package parser implements the Cuppa3 recursive descent parser.
package parser

import (
	"fmt"

	"github.com/shubham1882003/plipy/pkg/ast"
	"github.com/shubham1882003/plipy/pkg/lexer"
)

// SyntaxError reports a lexical or grammatical failure at a 1-based
// source position.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

type parser struct {
	tokens []lexer.Token
	pos    int
}

func newParser(source string) *parser {
	return &parser{tokens: lexer.Tokenize(source)}
}

// ParseProgram tokenizes and parses a whole Cuppa3 program. The parser
// performs no semantic validation; undeclared names, arity and the like
// are the evaluator's business.
func ParseProgram(source string) (*ast.Program, error) {
	p := newParser(source)
	var stmts []ast.Statement
	for p.peek() != lexer.TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.NewProgram(stmts), nil
}

// ParseExpression parses a single expression with nothing after it. The
// REPL uses this to evaluate bare expressions.
func ParseExpression(source string) (ast.Expression, error) {
	p := newParser(source)
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != lexer.TokenEOF {
		return nil, errAt(tok, "unexpected %s after expression", describe(tok))
	}
	return expr, nil
}
