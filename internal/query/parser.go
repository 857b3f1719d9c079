package query

import (
	"errors"
	"fmt"

	"github.com/KyussCaesar/bq/internal/match"
)

// Parser consumes tokens produced by the lexer and builds a query tree.
//
// Grammar, lowest to highest precedence:
//
//	query      := or_group ( '|' or_group )*
//	or_group   := and_group ( '&' and_group )*
//	and_group  := LITERAL | '!' and_group | '(' query ')'
//
// Precedence (NOT tightest, then AND, then OR) falls out of the grammar
// nesting; there is no precedence-climbing loop.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser instance over a token list, which must
// be terminated by a TokenEOF.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse processes all tokens and builds the query tree. It returns a
// *ParseError on empty input, an unexpected token, an unmatched
// parenthesis, or trailing tokens after a complete query; it never
// returns a partial tree alongside an error.
func (p *Parser) Parse() (Expr, error) {
	if p.peek().Type == TokenEOF {
		return nil, &ParseError{Pos: 0, Msg: "empty query"}
	}

	root, err := p.parseQuery()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, &ParseError{
			Pos: tok.Position,
			Msg: fmt.Sprintf("unexpected %s after complete query", tok),
		}
	}
	return root, nil
}

// parseQuery left-folds '|'-separated groups into Or nodes.
func (p *Parser) parseQuery() (Expr, error) {
	left, err := p.parseOrGroup()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenOr {
		p.current++
		right, err := p.parseOrGroup()
		if err != nil {
			return nil, err
		}
		left = &Or{Left: left, Right: right}
	}
	return left, nil
}

// parseOrGroup left-folds '&'-separated groups into And nodes.
func (p *Parser) parseOrGroup() (Expr, error) {
	left, err := p.parseAndGroup()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == TokenAnd {
		p.current++
		right, err := p.parseAndGroup()
		if err != nil {
			return nil, err
		}
		left = &And{Left: left, Right: right}
	}
	return left, nil
}

// parseAndGroup dispatches on the next token: a literal compiles directly
// into a Literal leaf (building its KMP table immediately), '!' recurses
// and wraps the result in Not, '(' recurses into a full query and
// requires the matching ')'.
func (p *Parser) parseAndGroup() (Expr, error) {
	tok := p.next()

	switch tok.Type {
	case TokenLiteral:
		matcher, err := match.NewStringMatcher(tok.Value)
		if err != nil {
			if errors.Is(err, match.ErrEmptyPattern) {
				return nil, &ParseError{Pos: tok.Position, Msg: "empty literal"}
			}
			return nil, &ParseError{Pos: tok.Position, Msg: err.Error()}
		}
		return &Literal{Pattern: tok.Value, Matcher: matcher}, nil

	case TokenNot:
		operand, err := p.parseAndGroup()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil

	case TokenLParen:
		inner, err := p.parseQuery()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != TokenRParen {
			return nil, &ParseError{
				Pos: closing.Position,
				Msg: fmt.Sprintf("expected ')' to close group, found %s", closing),
			}
		}
		return inner, nil

	case TokenEOF:
		return nil, &ParseError{Pos: tok.Position, Msg: "unexpected end of query"}

	default:
		return nil, &ParseError{
			Pos: tok.Position,
			Msg: fmt.Sprintf("unexpected %s: expected a literal, '!' or '('", tok),
		}
	}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Type: TokenEOF, Position: len(p.tokens)}
	}
	return p.tokens[p.current]
}

// next consumes and returns the current token.
func (p *Parser) next() Token {
	tok := p.peek()
	if p.current < len(p.tokens) {
		p.current++
	}
	return tok
}
