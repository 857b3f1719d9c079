package query

import (
	"fmt"
	"strings"
	"unicode"
)

// Lexer is responsible for scanning a raw query string and producing tokens.
type Lexer struct {
	input    string // the entire query to tokenize
	position int    // current reading position in input
	tokens   []Token
}

// NewLexer returns a new Lexer with the given input and initializes state.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// terminated by a TokenEOF. It has no side effects beyond the lexer's own
// state; a *LexError is returned on an unterminated literal or an
// unrecognized character.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case c == '"':
			if err := l.lexLiteral(currentPos); err != nil {
				return nil, err
			}

		case c == '&':
			l.addToken(TokenAnd, "&", currentPos)
			l.position++

		case c == '|':
			l.addToken(TokenOr, "|", currentPos)
			l.position++

		case c == '!':
			l.addToken(TokenNot, "!", currentPos)
			l.position++

		case c == '(':
			l.addToken(TokenLParen, "(", currentPos)
			l.position++

		case c == ')':
			l.addToken(TokenRParen, ")", currentPos)
			l.position++

		case isWhitespace(c):
			// whitespace between tokens is insignificant
			l.position++

		case isAlphabetic(c):
			// a bare keyword almost always means the user forgot the quotes
			return nil, &LexError{
				Pos: currentPos,
				Msg: fmt.Sprintf("unquoted character %q: keywords must be enclosed in double quotes", c),
			}

		default:
			return nil, &LexError{
				Pos: currentPos,
				Msg: fmt.Sprintf("unexpected character %q", c),
			}
		}
	}

	l.addToken(TokenEOF, "", l.position)
	return l.tokens, nil
}

// lexLiteral scans a double-quoted literal starting at the opening quote.
// There is no escaping: the literal runs until the next '"'.
func (l *Lexer) lexLiteral(startPos int) error {
	// skip the opening quote
	start := l.position + 1

	end := strings.IndexByte(l.input[start:], '"')
	if end < 0 {
		return &LexError{Pos: startPos, Msg: "unterminated literal: missing closing '\"'"}
	}

	l.addToken(TokenLiteral, l.input[start:start+end], startPos)
	l.position = start + end + 1
	return nil
}

// addToken is a helper to append a new token to the lexer's token list.
func (l *Lexer) addToken(tokenType TokenType, value string, pos int) {
	l.tokens = append(l.tokens, Token{
		Type:     tokenType,
		Value:    value,
		Position: pos,
	})
}

// isWhitespace checks if the given byte is a space, tab, newline, etc.
func isWhitespace(c byte) bool {
	return unicode.IsSpace(rune(c))
}

func isAlphabetic(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
