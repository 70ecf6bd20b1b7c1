package value

import (
	"math"
	"testing"

	"github.com/KimNorgaard/go-lox/token"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		v        Value
		expected string
	}{
		{Number(7), "7"},
		{Number(-3), "-3"},
		{Number(2.5), "2.5"},
		{Number(0.1 + 0.2), "0.30000000000000004"},
		{Number(1e21), "1000000000000000000000"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{String("a b"), "a b"},
		{String(""), ""},
		{Boolean(true), "true"},
		{Boolean(false), "false"},
		{Nil{}, "nil"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.v.String())
		})
	}
}

func TestTruthy(t *testing.T) {
	require.False(t, Truthy(Nil{}))
	require.False(t, Truthy(Boolean(false)))
	require.True(t, Truthy(Boolean(true)))
	require.True(t, Truthy(Number(0)))
	require.True(t, Truthy(String("")))
	require.True(t, Truthy(String("false")))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Value
		expected bool
	}{
		{"same numbers", Number(1), Number(1), true},
		{"different numbers", Number(1), Number(2), false},
		{"number and string", Number(1), String("1"), false},
		{"same strings", String("a"), String("a"), true},
		{"nil and nil", Nil{}, Nil{}, true},
		{"nil and false", Nil{}, Boolean(false), false},
		{"booleans", Boolean(true), Boolean(true), true},
		{"zero and false", Number(0), Boolean(false), false},
		{"nan", Number(math.NaN()), Number(math.NaN()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Equal(tt.a, tt.b))
		})
	}
}

func TestFromLiteral(t *testing.T) {
	require.Equal(t, Number(1.5), FromLiteral(token.Number(1.5)))
	require.Equal(t, String("s"), FromLiteral(token.String("s")))
	require.Equal(t, Boolean(true), FromLiteral(token.Bool(true)))
	require.Equal(t, Nil{}, FromLiteral(token.Nil{}))
	require.Equal(t, Nil{}, FromLiteral(nil))
}
