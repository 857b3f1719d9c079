package query

import (
	"reflect"
	"testing"
)

func TestLexer_Tokenize(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Token
		wantErr bool
	}{
		{
			name:  "single literal",
			input: `"iphone"`,
			want: []Token{
				{Type: TokenLiteral, Value: "iphone", Position: 0},
				{Type: TokenEOF, Value: "", Position: 8},
			},
		},
		{
			name:  "literal with spaces inside",
			input: `"i phone"`,
			want: []Token{
				{Type: TokenLiteral, Value: "i phone", Position: 0},
				{Type: TokenEOF, Value: "", Position: 9},
			},
		},
		{
			name:  "operators and parens",
			input: `("a"&"b")|!"c"`,
			want: []Token{
				{Type: TokenLParen, Value: "(", Position: 0},
				{Type: TokenLiteral, Value: "a", Position: 1},
				{Type: TokenAnd, Value: "&", Position: 4},
				{Type: TokenLiteral, Value: "b", Position: 5},
				{Type: TokenRParen, Value: ")", Position: 8},
				{Type: TokenOr, Value: "|", Position: 9},
				{Type: TokenNot, Value: "!", Position: 10},
				{Type: TokenLiteral, Value: "c", Position: 11},
				{Type: TokenEOF, Value: "", Position: 14},
			},
		},
		{
			name:  "whitespace is insignificant",
			input: "  \"a\" \t & \n \"b\"  ",
			want: []Token{
				{Type: TokenLiteral, Value: "a", Position: 2},
				{Type: TokenAnd, Value: "&", Position: 8},
				{Type: TokenLiteral, Value: "b", Position: 12},
				{Type: TokenEOF, Value: "", Position: 17},
			},
		},
		{
			name:  "empty input yields only EOF",
			input: "",
			want: []Token{
				{Type: TokenEOF, Value: "", Position: 0},
			},
		},
		{
			name:  "empty literal is lexed, parser rejects it",
			input: `""`,
			want: []Token{
				{Type: TokenLiteral, Value: "", Position: 0},
				{Type: TokenEOF, Value: "", Position: 2},
			},
		},
		{
			name:    "unterminated literal",
			input:   `"unterminated`,
			wantErr: true,
		},
		{
			name:    "bare keyword without quotes",
			input:   `iphone`,
			wantErr: true,
		},
		{
			name:    "unexpected character",
			input:   `"a" # "b"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewLexer(tt.input).Tokenize()
			if (err != nil) != tt.wantErr {
				t.Errorf("Tokenize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLexer_ErrorsAreLexErrors(t *testing.T) {
	for _, input := range []string{`"unterminated`, `abc`, `?`} {
		_, err := NewLexer(input).Tokenize()
		if err == nil {
			t.Fatalf("Tokenize(%q) expected error", input)
		}
		lexErr, ok := err.(*LexError)
		if !ok {
			t.Fatalf("Tokenize(%q) error type = %T, want *LexError", input, err)
		}
		if lexErr.Pos < 0 || lexErr.Pos >= len(input)+1 {
			t.Errorf("Tokenize(%q) error position = %d out of range", input, lexErr.Pos)
		}
	}
}
