package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KyussCaesar/bq/internal/match"
)

func literal(t *testing.T, pattern string) *Literal {
	t.Helper()
	m, err := match.NewStringMatcher(pattern)
	require.NoError(t, err)
	return &Literal{Pattern: pattern, Matcher: m}
}

func TestEval(t *testing.T) {
	a := literal(t, "a")
	b := literal(t, "b")

	tests := []struct {
		name string
		expr Expr
		text string
		want bool
	}{
		{"literal present", a, "abc", true},
		{"literal absent", a, "xyz", false},
		{"and both", &And{Left: a, Right: b}, "ab", true},
		{"and left only", &And{Left: a, Right: b}, "a", false},
		{"and right only", &And{Left: a, Right: b}, "b", false},
		{"or both", &Or{Left: a, Right: b}, "ab", true},
		{"or left only", &Or{Left: a, Right: b}, "a", true},
		{"or neither", &Or{Left: a, Right: b}, "xyz", false},
		{"not absent", &Not{Operand: a}, "xyz", true},
		{"not present", &Not{Operand: a}, "abc", false},
		{"nested", &And{Left: &Not{Operand: a}, Right: b}, "b", true},
		{"empty text", &Not{Operand: a}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eval(tt.expr, tt.text))
		})
	}
}

func TestExprKinds(t *testing.T) {
	a := literal(t, "a")

	assert.Equal(t, KindLiteral, a.Kind())
	assert.Equal(t, KindAnd, (&And{Left: a, Right: a}).Kind())
	assert.Equal(t, KindOr, (&Or{Left: a, Right: a}).Kind())
	assert.Equal(t, KindNot, (&Not{Operand: a}).Kind())
}

// Evaluation must not mutate the tree: the same expression applied to
// the same text always yields the same result.
func TestEval_Deterministic(t *testing.T) {
	expr := &Or{
		Left:  &And{Left: literal(t, "aa"), Right: &Not{Operand: literal(t, "bb")}},
		Right: literal(t, "cc"),
	}

	for i := 0; i < 50; i++ {
		assert.True(t, Eval(expr, "aa and nothing else"))
		assert.False(t, Eval(expr, "aa with bb"))
		assert.True(t, Eval(expr, "bb with cc"))
	}
}
