package query

import (
	"fmt"

	"github.com/KyussCaesar/bq/internal/match"
)

// ExprKind defines the node kinds of a compiled query tree.
type ExprKind int

const (
	KindLiteral ExprKind = iota
	KindAnd
	KindOr
	KindNot
)

// Expr is a node in the compiled query tree. The tree is acyclic and
// finite, each child is exclusively owned by its parent, and nothing is
// mutated after the parser returns. The union is closed: only the four
// node types in this package implement it, so Eval's type switch is
// exhaustive by construction.
type Expr interface {
	Kind() ExprKind // returns the node kind
	String() string // renders the subtree back in concrete query syntax
	expr()          // restricts implementations to this package
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*And)(nil)
	_ Expr = (*Or)(nil)
	_ Expr = (*Not)(nil)
)

// Literal is a leaf node: a quoted keyword tested for substring presence
// in the target text. The KMP matcher is built once at parse time and
// reused by every evaluation.
type Literal struct {
	Pattern string
	Matcher *match.StringMatcher
}

func (l *Literal) Kind() ExprKind { return KindLiteral }
func (l *Literal) String() string { return fmt.Sprintf("%q", l.Pattern) }
func (l *Literal) expr()          {}

// And matches when both children match.
type And struct {
	Left, Right Expr
}

func (a *And) Kind() ExprKind { return KindAnd }
func (a *And) String() string { return fmt.Sprintf("(%s & %s)", a.Left, a.Right) }
func (a *And) expr()          {}

// Or matches when either child matches.
type Or struct {
	Left, Right Expr
}

func (o *Or) Kind() ExprKind { return KindOr }
func (o *Or) String() string { return fmt.Sprintf("(%s | %s)", o.Left, o.Right) }
func (o *Or) expr()          {}

// Not matches when its operand doesn't.
type Not struct {
	Operand Expr
}

func (n *Not) Kind() ExprKind { return KindNot }
func (n *Not) String() string { return fmt.Sprintf("!%s", n.Operand) }
func (n *Not) expr()          {}

// Eval applies the compiled tree to text. Leaves have no side effects,
// so And and Or short-circuit. Malformed input can only be rejected at
// parse time; evaluation itself never fails.
func Eval(e Expr, text string) bool {
	switch n := e.(type) {
	case *Literal:
		return n.Matcher.Contains(text)
	case *And:
		return Eval(n.Left, text) && Eval(n.Right, text)
	case *Or:
		return Eval(n.Left, text) || Eval(n.Right, text)
	case *Not:
		return !Eval(n.Operand, text)
	default:
		panic(fmt.Sprintf("query: unknown expression type %T", e))
	}
}
