package query

import "fmt"

// TokenType defines different types of tokens that can be produced by the lexer.
type TokenType int

const (
	TokenLiteral TokenType = iota // "quoted text"
	TokenAnd                      // '&'
	TokenOr                       // '|'
	TokenNot                      // '!'
	TokenLParen                   // '('
	TokenRParen                   // ')'
	TokenEOF                      // end of input
)

// Token represents a single lexical token with type, value, and position.
type Token struct {
	Type     TokenType // type of this token
	Value    string    // literal contents for TokenLiteral, operator text otherwise
	Position int       // starting position in the original input
}

// String renders the token for error messages and debugging.
func (t Token) String() string {
	switch t.Type {
	case TokenLiteral:
		return fmt.Sprintf("%q", t.Value)
	case TokenEOF:
		return "end of query"
	default:
		return fmt.Sprintf("'%s'", t.Value)
	}
}
