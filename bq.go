// Package bq compiles a small boolean query language into an evaluable
// expression tree and tests arbitrary text against it by substring
// containment.
//
// Queries combine double-quoted keywords with '&' (and), '|' (or),
// '!' (not) and parentheses. NOT binds tightest, then AND, then OR:
//
//	m, err := bq.From(`("this" | "that") & "these" & "those"`)
//	if err != nil { ... }
//	m.Query("this these those") // true
//	m.Query("this that these")  // false, no "those"
//
// Each keyword is matched with a Knuth-Morris-Pratt substring scan whose
// failure table is precomputed at parse time, so a Matcher compiles once
// and evaluates in linear time per call. Matching is byte-exact: there
// is no case folding and no escaping inside literals.
package bq

import (
	"fmt"

	"github.com/KyussCaesar/bq/internal/query"
)

// Matcher holds a single compiled query. It is immutable after From
// returns and safe for concurrent use.
type Matcher struct {
	root query.Expr
}

// From compiles a query string into a Matcher. Malformed queries are
// rejected with a *query.LexError or *query.ParseError (reachable via
// errors.As) identifying the offending position; a Matcher is never
// partially built.
func From(q string) (*Matcher, error) {
	tokens, err := query.NewLexer(q).Tokenize()
	if err != nil {
		return nil, err
	}

	root, err := query.NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	return &Matcher{root: root}, nil
}

// MustFrom is like From but panics on a malformed query. It simplifies
// variable initialization with queries known to be valid.
func MustFrom(q string) *Matcher {
	m, err := From(q)
	if err != nil {
		panic(fmt.Sprintf("bq: invalid query %q: %v", q, err))
	}
	return m
}

// Query applies the compiled query to text. It is total: any text,
// including the empty string, yields a boolean, and repeated calls with
// the same text always return the same result.
func (m *Matcher) Query(text string) bool {
	return query.Eval(m.root, text)
}

// String renders the compiled query in concrete syntax, fully
// parenthesized.
func (m *Matcher) String() string {
	return m.root.String()
}
