package formatter

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-lox/ast"
	"github.com/KimNorgaard/go-lox/token"
)

const (
	defaultIndent = 2
)

// Formatter writes a program back out as source text.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

var (
	_ ast.StmtVisitor[struct{}] = (*Formatter)(nil)
	_ ast.ExprVisitor[string]   = (*Formatter)(nil)
)

// New returns a new formatter that writes to w.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes each statement on its own line.
func (f *Formatter) Format(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := f.writeStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// Expr returns the source form of a single expression.
func (f *Formatter) Expr(e ast.Expr) string {
	s, _ := ast.AcceptExpr[string](e, f)
	return s
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	for i := 0; i < f.depth; i++ {
		if err := f.write(f.indent); err != nil {
			return err
		}
	}
	return nil
}

// writeStmt writes an indented statement followed by a newline.
func (f *Formatter) writeStmt(s ast.Stmt) error {
	if err := f.writeIndent(); err != nil {
		return err
	}
	if _, err := ast.AcceptStmt[struct{}](s, f); err != nil {
		return err
	}
	return f.write("\n")
}

// writeBody writes the statement governed by an if, else or while. A block
// stays on the current line; anything else goes on the next line, one
// level deeper.
func (f *Formatter) writeBody(s ast.Stmt) error {
	if _, ok := s.(*ast.Block); ok {
		if err := f.write(" "); err != nil {
			return err
		}
		_, err := ast.AcceptStmt[struct{}](s, f)
		return err
	}
	if err := f.write("\n"); err != nil {
		return err
	}
	f.depth++
	defer func() { f.depth-- }()
	if err := f.writeIndent(); err != nil {
		return err
	}
	_, err := ast.AcceptStmt[struct{}](s, f)
	return err
}

func (f *Formatter) VisitBlock(s *ast.Block) (struct{}, error) {
	if len(s.Statements) == 0 {
		return struct{}{}, f.write("{}")
	}
	if err := f.write("{\n"); err != nil {
		return struct{}{}, err
	}
	f.depth++
	for _, st := range s.Statements {
		if err := f.writeStmt(st); err != nil {
			return struct{}{}, err
		}
	}
	f.depth--
	if err := f.writeIndent(); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, f.write("}")
}

func (f *Formatter) VisitExpression(s *ast.Expression) (struct{}, error) {
	return struct{}{}, f.write(f.Expr(s.Expression) + ";")
}

func (f *Formatter) VisitIf(s *ast.If) (struct{}, error) {
	if err := f.write("if (" + f.Expr(s.Condition) + ")"); err != nil {
		return struct{}{}, err
	}
	if err := f.writeBody(s.Then); err != nil {
		return struct{}{}, err
	}
	if s.Else == nil {
		return struct{}{}, nil
	}
	if _, ok := s.Then.(*ast.Block); ok {
		if err := f.write(" else"); err != nil {
			return struct{}{}, err
		}
	} else {
		if err := f.write("\n"); err != nil {
			return struct{}{}, err
		}
		if err := f.writeIndent(); err != nil {
			return struct{}{}, err
		}
		if err := f.write("else"); err != nil {
			return struct{}{}, err
		}
	}
	return struct{}{}, f.writeBody(s.Else)
}

func (f *Formatter) VisitPrint(s *ast.Print) (struct{}, error) {
	return struct{}{}, f.write("print " + f.Expr(s.Expression) + ";")
}

func (f *Formatter) VisitWhile(s *ast.While) (struct{}, error) {
	if err := f.write("while (" + f.Expr(s.Condition) + ")"); err != nil {
		return struct{}{}, err
	}
	return struct{}{}, f.writeBody(s.Body)
}

func (f *Formatter) VisitVar(s *ast.Var) (struct{}, error) {
	if s.Initializer == nil {
		return struct{}{}, f.write("var " + s.Name.Lexeme + ";")
	}
	return struct{}{}, f.write("var " + s.Name.Lexeme + " = " + f.Expr(s.Initializer) + ";")
}

func (f *Formatter) VisitAssign(e *ast.Assign) (string, error) {
	return e.Name.Lexeme + " = " + f.Expr(e.Value), nil
}

func (f *Formatter) VisitBinary(e *ast.Binary) (string, error) {
	return f.Expr(e.Left) + " " + e.Operator.Lexeme + " " + f.Expr(e.Right), nil
}

func (f *Formatter) VisitGrouping(e *ast.Grouping) (string, error) {
	return "(" + f.Expr(e.Expression) + ")", nil
}

func (f *Formatter) VisitLiteral(e *ast.Literal) (string, error) {
	// Strings have no escape sequences, so the raw text is quoted as is.
	if s, ok := e.Value.(token.String); ok {
		return `"` + string(s) + `"`, nil
	}
	// Numbers keep their source spelling; values beyond float64 range have
	// no other one.
	if e.Token.Type == token.NUMBER {
		return e.Token.Lexeme, nil
	}
	return e.Value.String(), nil
}

func (f *Formatter) VisitLogical(e *ast.Logical) (string, error) {
	return f.Expr(e.Left) + " " + e.Operator.Lexeme + " " + f.Expr(e.Right), nil
}

func (f *Formatter) VisitUnary(e *ast.Unary) (string, error) {
	return e.Operator.Lexeme + f.Expr(e.Right), nil
}

func (f *Formatter) VisitVariable(e *ast.Variable) (string, error) {
	return e.Name.Lexeme, nil
}
