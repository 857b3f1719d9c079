package query

import "fmt"

// LexError reports a malformed character sequence in the raw query string.
type LexError struct {
	Pos int    // byte offset of the offending character
	Msg string // what went wrong
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s", e.Pos, e.Msg)
}

// ParseError reports a structurally invalid token sequence.
type ParseError struct {
	Pos int    // byte offset of the offending token, or end of input
	Msg string // what went wrong
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
}
