package formatter_test

import (
	"bytes"
	"testing"

	"github.com/KimNorgaard/go-lox/ast"
	"github.com/KimNorgaard/go-lox/internal/formatter"
	"github.com/KimNorgaard/go-lox/lexer"
	"github.com/KimNorgaard/go-lox/parser"
	"github.com/KimNorgaard/go-lox/token"
	"github.com/stretchr/testify/require"
)

// Centralized test cases to be used across different format settings.
var testCases = []struct {
	name             string
	input            string
	expectedCompact  string
	expectedIndented string // 2 spaces
}{
	{
		name:             "print",
		input:            "print   1+2 *3 ;",
		expectedCompact:  "print 1 + 2 * 3;\n",
		expectedIndented: "print 1 + 2 * 3;\n",
	},
	{
		name:             "var and assignment",
		input:            "var a; var b=\"s\"; a=b=-1;",
		expectedCompact:  "var a;\nvar b = \"s\";\na = b = -1;\n",
		expectedIndented: "var a;\nvar b = \"s\";\na = b = -1;\n",
	},
	{
		name:             "grouping and logic",
		input:            "print (1+2)*3 == 9 and !nil or false;",
		expectedCompact:  "print (1 + 2) * 3 == 9 and !nil or false;\n",
		expectedIndented: "print (1 + 2) * 3 == 9 and !nil or false;\n",
	},
	{
		name:             "empty block",
		input:            "{}",
		expectedCompact:  "{}\n",
		expectedIndented: "{}\n",
	},
	{
		name:             "nested blocks",
		input:            "{ var a = 1; { print a; } }",
		expectedCompact:  "{\nvar a = 1;\n{\nprint a;\n}\n}\n",
		expectedIndented: "{\n  var a = 1;\n  {\n    print a;\n  }\n}\n",
	},
	{
		name:             "if else with blocks",
		input:            "if (a) { print 1; } else { print 2; }",
		expectedCompact:  "if (a) {\nprint 1;\n} else {\nprint 2;\n}\n",
		expectedIndented: "if (a) {\n  print 1;\n} else {\n  print 2;\n}\n",
	},
	{
		name:             "if else without blocks",
		input:            "if (a) print 1; else print 2;",
		expectedCompact:  "if (a)\nprint 1;\nelse\nprint 2;\n",
		expectedIndented: "if (a)\n  print 1;\nelse\n  print 2;\n",
	},
	{
		name:             "for loop in while form",
		input:            "for (var i = 0; i < 2; i = i + 1) print i;",
		expectedCompact:  "{\nvar i = 0;\nwhile (i < 2) {\nprint i;\ni = i + 1;\n}\n}\n",
		expectedIndented: "{\n  var i = 0;\n  while (i < 2) {\n    print i;\n    i = i + 1;\n  }\n}\n",
	},
	{
		name:             "numbers keep their spelling",
		input:            "print 1.50 + 007;",
		expectedCompact:  "print 1.50 + 007;\n",
		expectedIndented: "print 1.50 + 007;\n",
	},
	{
		name:             "multi-line string is kept raw",
		input:            "print \"a\nb\";",
		expectedCompact:  "print \"a\nb\";\n",
		expectedIndented: "print \"a\nb\";\n",
	},
}

func parse(t *testing.T, input string) []ast.Stmt {
	t.Helper()
	tokens, scanErrs := lexer.Scan(input)
	require.Empty(t, scanErrs)
	stmts, errs := parser.Parse(tokens)
	require.Empty(t, errs)
	return stmts
}

func TestFormatCompact(t *testing.T) {
	zero := 0
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := formatter.New(&buf, &zero)
			require.NoError(t, f.Format(parse(t, tc.input)))
			require.Equal(t, tc.expectedCompact, buf.String())
		})
	}
}

func TestFormatIndented(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := formatter.New(&buf, nil)
			require.NoError(t, f.Format(parse(t, tc.input)))
			require.Equal(t, tc.expectedIndented, buf.String())
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			original := parse(t, tc.input)

			var buf bytes.Buffer
			require.NoError(t, formatter.New(&buf, nil).Format(original))
			reparsed := parse(t, buf.String())

			require.Equal(t, len(original), len(reparsed))
			for i := range original {
				require.Equal(t, original[i].String(), reparsed[i].String())
			}
		})
	}
}

func TestExpr(t *testing.T) {
	expr := &ast.Unary{
		Operator: token.Token{Type: token.MINUS, Lexeme: "-"},
		Right:    &ast.Literal{Value: token.Number(2.5)},
	}
	require.Equal(t, "-2.5", formatter.New(nil, nil).Expr(expr))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestFormatWriteError(t *testing.T) {
	err := formatter.New(failingWriter{}, nil).Format(parse(t, "{ print 1; }"))
	require.ErrorIs(t, err, bytes.ErrTooLarge)
}
