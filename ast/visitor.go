package ast

import "fmt"

// ExprVisitor is implemented by behaviors over expressions. R is the result
// type produced for each node. Adding an Expr kind means adding a method
// here, which every implementation must then provide.
type ExprVisitor[R any] interface {
	VisitAssign(e *Assign) (R, error)
	VisitBinary(e *Binary) (R, error)
	VisitGrouping(e *Grouping) (R, error)
	VisitLiteral(e *Literal) (R, error)
	VisitLogical(e *Logical) (R, error)
	VisitUnary(e *Unary) (R, error)
	VisitVariable(e *Variable) (R, error)
}

// StmtVisitor is the statement counterpart of ExprVisitor.
type StmtVisitor[R any] interface {
	VisitBlock(s *Block) (R, error)
	VisitExpression(s *Expression) (R, error)
	VisitIf(s *If) (R, error)
	VisitPrint(s *Print) (R, error)
	VisitWhile(s *While) (R, error)
	VisitVar(s *Var) (R, error)
}

// AcceptExpr dispatches e to the matching method of v.
func AcceptExpr[R any](e Expr, v ExprVisitor[R]) (R, error) {
	switch n := e.(type) {
	case *Assign:
		return v.VisitAssign(n)
	case *Binary:
		return v.VisitBinary(n)
	case *Grouping:
		return v.VisitGrouping(n)
	case *Literal:
		return v.VisitLiteral(n)
	case *Logical:
		return v.VisitLogical(n)
	case *Unary:
		return v.VisitUnary(n)
	case *Variable:
		return v.VisitVariable(n)
	}
	panic(fmt.Sprintf("ast: unknown expression %T", e))
}

// AcceptStmt dispatches s to the matching method of v.
func AcceptStmt[R any](s Stmt, v StmtVisitor[R]) (R, error) {
	switch n := s.(type) {
	case *Block:
		return v.VisitBlock(n)
	case *Expression:
		return v.VisitExpression(n)
	case *If:
		return v.VisitIf(n)
	case *Print:
		return v.VisitPrint(n)
	case *While:
		return v.VisitWhile(n)
	case *Var:
		return v.VisitVar(n)
	}
	panic(fmt.Sprintf("ast: unknown statement %T", s))
}
