package ast

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-lox/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns a parenthesized prefix representation of the node.
	String() string
}

// Expr is a node that produces a value. The set of implementations is
// closed to this package.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a node executed for its effect. The set of implementations is
// closed to this package.
type Stmt interface {
	Node
	stmtNode()
}

// Assign represents `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Binary represents an arithmetic, comparison or equality operation.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Grouping represents a parenthesized expression. Paren is the opening
// parenthesis.
type Grouping struct {
	Paren      token.Token
	Expression Expr
}

// Literal represents a constant. Token is the token it was scanned from.
type Literal struct {
	Token token.Token
	Value token.Literal
}

// Logical represents a short-circuiting `and` or `or`.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Unary represents `!right` or `-right`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

// Variable represents a read of a named binding.
type Variable struct {
	Name token.Token
}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}

func (a *Assign) String() string   { return parenthesize("= "+a.Name.Lexeme, a.Value) }
func (b *Binary) String() string   { return parenthesize(b.Operator.Lexeme, b.Left, b.Right) }
func (g *Grouping) String() string { return parenthesize("group", g.Expression) }
func (l *Literal) String() string  { return l.Value.String() }
func (l *Logical) String() string  { return parenthesize(l.Operator.Lexeme, l.Left, l.Right) }
func (u *Unary) String() string    { return parenthesize(u.Operator.Lexeme, u.Right) }
func (v *Variable) String() string { return v.Name.Lexeme }

// Block represents a braced sequence of statements with its own scope.
// Brace is the opening brace.
type Block struct {
	Brace      token.Token
	Statements []Stmt
}

// Expression represents an expression evaluated for its side effects.
type Expression struct {
	Expression Expr
}

// If represents a conditional. Else is nil when there is no else branch.
type If struct {
	Keyword   token.Token
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// Print represents `print expression;`.
type Print struct {
	Keyword    token.Token
	Expression Expr
}

// While represents a pre-tested loop. The parser also lowers `for` loops
// into this node.
type While struct {
	Keyword   token.Token
	Condition Expr
	Body      Stmt
}

// Var represents a declaration. Initializer is nil for `var name;`.
type Var struct {
	Name        token.Token
	Initializer Expr
}

func (*Block) stmtNode()      {}
func (*Expression) stmtNode() {}
func (*If) stmtNode()         {}
func (*Print) stmtNode()      {}
func (*While) stmtNode()      {}
func (*Var) stmtNode()        {}

func (b *Block) String() string {
	var out bytes.Buffer
	out.WriteString("(block")
	for _, s := range b.Statements {
		out.WriteString(" ")
		out.WriteString(s.String())
	}
	out.WriteString(")")
	return out.String()
}

func (e *Expression) String() string { return parenthesize(";", e.Expression) }
func (p *Print) String() string      { return parenthesize("print", p.Expression) }
func (w *While) String() string      { return parenthesize("while", w.Condition, w.Body) }

func (i *If) String() string {
	if i.Else == nil {
		return parenthesize("if", i.Condition, i.Then)
	}
	return parenthesize("if-else", i.Condition, i.Then, i.Else)
}

func (v *Var) String() string {
	if v.Initializer == nil {
		return "(var " + v.Name.Lexeme + ")"
	}
	return parenthesize("var "+v.Name.Lexeme, v.Initializer)
}

func parenthesize(name string, nodes ...Node) string {
	parts := make([]string, 0, len(nodes)+1)
	parts = append(parts, name)
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return "(" + strings.Join(parts, " ") + ")"
}
