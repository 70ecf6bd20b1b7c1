package errors

import (
	"testing"

	"github.com/KimNorgaard/go-lox/token"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "scan error has no location",
			err:      NewScanError(3, "Unexpected character"),
			expected: "[line 3] Error: Unexpected character",
		},
		{
			name:     "parse error at token",
			err:      NewParseError(token.Token{Type: token.IDENT, Lexeme: "foo", Line: 2}, "Expected ';' after value."),
			expected: "[line 2] Error at 'foo': Expected ';' after value.",
		},
		{
			name:     "parse error at end",
			err:      NewParseError(token.Token{Type: token.EOF, Line: 7}, "Expected expression."),
			expected: "[line 7] Error at end: Expected expression.",
		},
		{
			name:     "runtime error",
			err:      NewRuntimeError(token.Token{Type: token.SLASH, Lexeme: "/", Line: 1}, "Divide by zero."),
			expected: "[line 1] Error at '/': Divide by zero.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestList(t *testing.T) {
	var empty List
	require.NoError(t, empty.Err())

	l := List{
		NewScanError(1, "Unterminated string"),
		NewParseError(token.Token{Type: token.EOF, Line: 2}, "Expected expression."),
	}
	require.Error(t, l.Err())
	require.Equal(t, "[line 1] Error: Unterminated string\n[line 2] Error at end: Expected expression.", l.Error())
	require.Equal(t, Scan, l[0].Kind)
	require.Equal(t, Parse, l[1].Kind)
	require.Equal(t, "parse", l[1].Kind.String())
}
