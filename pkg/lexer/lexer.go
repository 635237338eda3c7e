// Package lexer implements the Cuppa3 tokenizer.
package lexer

// Type identifies the type of a lexer token.
type Type int

const (
	// Special
	TokenEOF Type = iota
	TokenIllegal

	// Literals and identifiers
	TokenIdent
	TokenNumber

	// Operators
	TokenPlus   // +
	TokenMinus  // -
	TokenStar   // *
	TokenSlash  // /
	TokenEqEq   // ==
	TokenLtEq   // <=
	TokenAssign // =

	// Punctuation
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenComma     // ,
	TokenSemicolon // ;

	// Keywords
	TokenDeclare
	TokenGet
	TokenPut
	TokenIf
	TokenElse
	TokenWhile
	TokenReturn
	TokenNot
)

var typeNames = map[Type]string{
	TokenEOF:       "end of input",
	TokenIllegal:   "illegal character",
	TokenIdent:     "identifier",
	TokenNumber:    "number",
	TokenPlus:      "'+'",
	TokenMinus:     "'-'",
	TokenStar:      "'*'",
	TokenSlash:     "'/'",
	TokenEqEq:      "'=='",
	TokenLtEq:      "'<='",
	TokenAssign:    "'='",
	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenLBrace:    "'{'",
	TokenRBrace:    "'}'",
	TokenComma:     "','",
	TokenSemicolon: "';'",
	TokenDeclare:   "'declare'",
	TokenGet:       "'get'",
	TokenPut:       "'put'",
	TokenIf:        "'if'",
	TokenElse:      "'else'",
	TokenWhile:     "'while'",
	TokenReturn:    "'return'",
	TokenNot:       "'not'",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown token"
}

// Token represents a single lexer token. Line and Col are 1-based and
// point at the token's first character.
type Token struct {
	Type   Type
	Lexeme string
	Line   int
	Col    int
}

var keywords = map[string]Type{
	"declare": TokenDeclare,
	"get":     TokenGet,
	"put":     TokenPut,
	"if":      TokenIf,
	"else":    TokenElse,
	"while":   TokenWhile,
	"return":  TokenReturn,
	"not":     TokenNot,
}

type scanner struct {
	source string
	pos    int
	line   int
	col    int
}

func newScanner(source string) *scanner {
	return &scanner{source: source, pos: 0, line: 1, col: 1}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.source)
}

func (s *scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.source[s.pos]
}

func (s *scanner) peekAt(offset int) byte {
	p := s.pos + offset
	if p >= len(s.source) {
		return 0
	}
	return s.source[p]
}

func (s *scanner) advance() byte {
	ch := s.source[s.pos]
	s.pos++
	if ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return ch
}

func (s *scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		ch := s.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.advance()
		} else if ch == '/' && s.peekAt(1) == '/' {
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		} else {
			break
		}
	}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlphaNumeric(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}

func (s *scanner) token(typ Type, lexeme string, line, col int) Token {
	return Token{Type: typ, Lexeme: lexeme, Line: line, Col: col}
}

// scanNumber scans a run of digits. Integer literals are nonnegative;
// negation is an operator handled by the parser.
func (s *scanner) scanNumber() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos
	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}
	return s.token(TokenNumber, s.source[startPos:s.pos], startLine, startCol)
}

func (s *scanner) scanIdentOrKeyword() Token {
	startLine, startCol := s.line, s.col
	startPos := s.pos
	for !s.atEnd() && isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[startPos:s.pos]
	if typ, ok := keywords[text]; ok {
		return s.token(typ, text, startLine, startCol)
	}
	return s.token(TokenIdent, text, startLine, startCol)
}

func (s *scanner) nextToken() Token {
	s.skipWhitespaceAndComments()

	if s.atEnd() {
		return s.token(TokenEOF, "", s.line, s.col)
	}

	ch := s.peek()
	startLine, startCol := s.line, s.col

	switch ch {
	case '+':
		s.advance()
		return s.token(TokenPlus, "+", startLine, startCol)
	case '-':
		s.advance()
		return s.token(TokenMinus, "-", startLine, startCol)
	case '*':
		s.advance()
		return s.token(TokenStar, "*", startLine, startCol)
	case '/':
		s.advance()
		return s.token(TokenSlash, "/", startLine, startCol)
	case '(':
		s.advance()
		return s.token(TokenLParen, "(", startLine, startCol)
	case ')':
		s.advance()
		return s.token(TokenRParen, ")", startLine, startCol)
	case '{':
		s.advance()
		return s.token(TokenLBrace, "{", startLine, startCol)
	case '}':
		s.advance()
		return s.token(TokenRBrace, "}", startLine, startCol)
	case ',':
		s.advance()
		return s.token(TokenComma, ",", startLine, startCol)
	case ';':
		s.advance()
		return s.token(TokenSemicolon, ";", startLine, startCol)
	case '=':
		s.advance()
		if !s.atEnd() && s.peek() == '=' {
			s.advance()
			return s.token(TokenEqEq, "==", startLine, startCol)
		}
		return s.token(TokenAssign, "=", startLine, startCol)
	case '<':
		s.advance()
		if !s.atEnd() && s.peek() == '=' {
			s.advance()
			return s.token(TokenLtEq, "<=", startLine, startCol)
		}
		// Bare '<' is not an operator in this language.
		return s.token(TokenIllegal, "<", startLine, startCol)
	}

	if isDigit(ch) {
		return s.scanNumber()
	}
	if isAlpha(ch) {
		return s.scanIdentOrKeyword()
	}

	s.advance()
	return s.token(TokenIllegal, string(ch), startLine, startCol)
}

// Tokenize breaks source code into a slice of tokens ending with an EOF
// token. Unknown characters become Illegal tokens; the parser reports
// them with their position.
func Tokenize(source string) []Token {
	s := newScanner(source)
	var tokens []Token
	for {
		tok := s.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			break
		}
	}
	return tokens
}
