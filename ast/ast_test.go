package ast

import (
	"testing"

	"github.com/KimNorgaard/go-lox/token"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	x := token.Token{Type: token.IDENT, Lexeme: "x", Line: 1}
	program := &Block{
		Statements: []Stmt{
			&Var{Name: x, Initializer: &Literal{Value: token.Number(1)}},
			&While{
				Condition: &Binary{
					Left:     &Variable{Name: x},
					Operator: token.Token{Type: token.LESS, Lexeme: "<"},
					Right:    &Literal{Value: token.Number(3)},
				},
				Body: &Block{Statements: []Stmt{
					&Print{Expression: &Grouping{Expression: &Unary{
						Operator: token.Token{Type: token.MINUS, Lexeme: "-"},
						Right:    &Variable{Name: x},
					}}},
					&Expression{Expression: &Assign{Name: x, Value: &Logical{
						Left:     &Literal{Value: token.Nil{}},
						Operator: token.Token{Type: token.OR, Lexeme: "or"},
						Right:    &Literal{Value: token.String("s")},
					}}},
				}},
			},
			&If{Condition: &Literal{Value: token.Bool(true)}, Then: &Var{Name: x}},
		},
	}

	expected := `(block (var x 1) (while (< x 3) (block (print (group (- x))) (; (= x (or nil "s"))))) (if true (var x)))`
	require.Equal(t, expected, program.String())
}

// countingVisitor counts the nodes it visits, exercising both dispatchers.
type countingVisitor struct {
	exprs, stmts int
}

func (c *countingVisitor) expr(e Expr) (int, error) { return AcceptExpr[int](e, c) }
func (c *countingVisitor) stmt(s Stmt) (int, error) { return AcceptStmt[int](s, c) }

func (c *countingVisitor) VisitAssign(e *Assign) (int, error) {
	c.exprs++
	return c.expr(e.Value)
}

func (c *countingVisitor) VisitBinary(e *Binary) (int, error) {
	c.exprs++
	if _, err := c.expr(e.Left); err != nil {
		return 0, err
	}
	return c.expr(e.Right)
}

func (c *countingVisitor) VisitGrouping(e *Grouping) (int, error) {
	c.exprs++
	return c.expr(e.Expression)
}

func (c *countingVisitor) VisitLiteral(*Literal) (int, error) {
	c.exprs++
	return c.exprs, nil
}

func (c *countingVisitor) VisitLogical(e *Logical) (int, error) {
	c.exprs++
	if _, err := c.expr(e.Left); err != nil {
		return 0, err
	}
	return c.expr(e.Right)
}

func (c *countingVisitor) VisitUnary(e *Unary) (int, error) {
	c.exprs++
	return c.expr(e.Right)
}

func (c *countingVisitor) VisitVariable(*Variable) (int, error) {
	c.exprs++
	return c.exprs, nil
}

func (c *countingVisitor) VisitBlock(s *Block) (int, error) {
	c.stmts++
	for _, st := range s.Statements {
		if _, err := c.stmt(st); err != nil {
			return 0, err
		}
	}
	return c.stmts, nil
}

func (c *countingVisitor) VisitExpression(s *Expression) (int, error) {
	c.stmts++
	return c.expr(s.Expression)
}

func (c *countingVisitor) VisitIf(s *If) (int, error) {
	c.stmts++
	if _, err := c.expr(s.Condition); err != nil {
		return 0, err
	}
	if _, err := c.stmt(s.Then); err != nil {
		return 0, err
	}
	if s.Else != nil {
		return c.stmt(s.Else)
	}
	return c.stmts, nil
}

func (c *countingVisitor) VisitPrint(s *Print) (int, error) {
	c.stmts++
	return c.expr(s.Expression)
}

func (c *countingVisitor) VisitWhile(s *While) (int, error) {
	c.stmts++
	if _, err := c.expr(s.Condition); err != nil {
		return 0, err
	}
	return c.stmt(s.Body)
}

func (c *countingVisitor) VisitVar(s *Var) (int, error) {
	c.stmts++
	if s.Initializer != nil {
		return c.expr(s.Initializer)
	}
	return c.stmts, nil
}

func TestAccept(t *testing.T) {
	x := token.Token{Type: token.IDENT, Lexeme: "x"}
	stmt := &Block{Statements: []Stmt{
		&Var{Name: x},
		&If{
			Condition: &Variable{Name: x},
			Then:      &Print{Expression: &Literal{Value: token.Number(1)}},
			Else: &Expression{Expression: &Assign{Name: x, Value: &Binary{
				Left:     &Literal{Value: token.Number(1)},
				Operator: token.Token{Type: token.PLUS, Lexeme: "+"},
				Right:    &Grouping{Expression: &Literal{Value: token.Number(2)}},
			}}},
		},
	}}

	v := &countingVisitor{}
	_, err := AcceptStmt[int](stmt, v)
	require.NoError(t, err)
	require.Equal(t, 5, v.stmts)
	require.Equal(t, 7, v.exprs)
}
