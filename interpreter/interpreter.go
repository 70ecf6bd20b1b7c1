// Package interpreter evaluates a parsed program by walking its syntax tree.
package interpreter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/KimNorgaard/go-lox/ast"
	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/token"
	"github.com/KimNorgaard/go-lox/value"
)

// DefaultMaxDepth is the default limit on evaluation nesting. Each node
// evaluated counts one level, matching the depth the parser accepts.
const DefaultMaxDepth = ast.DefaultMaxDepth

// Option configures an Interpreter.
type Option func(*Interpreter)

// MaxDepth limits how deeply statements and expressions may nest during
// evaluation. Non-positive values are ignored.
func MaxDepth(n int) Option {
	return func(i *Interpreter) {
		if n > 0 {
			i.maxDepth = n
		}
	}
}

// Logger sets the logger used for debug output.
func Logger(l *slog.Logger) Option {
	return func(i *Interpreter) {
		if l != nil {
			i.log = l
		}
	}
}

// WithEnvironment makes env the global frame instead of a fresh one.
func WithEnvironment(env *Environment) Option {
	return func(i *Interpreter) {
		if env != nil {
			i.globals = env
		}
	}
}

// Interpreter executes statements against a chain of environments. It is
// not safe for concurrent use.
type Interpreter struct {
	out     io.Writer
	globals *Environment
	env     *Environment

	depth    int
	maxDepth int
	log      *slog.Logger
}

var (
	_ ast.ExprVisitor[value.Value] = (*Interpreter)(nil)
	_ ast.StmtVisitor[struct{}]    = (*Interpreter)(nil)
)

// New returns an Interpreter that writes print output to out. Globals
// persist across calls to Interpret.
func New(out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		out:      out,
		globals:  NewEnvironment(nil),
		maxDepth: DefaultMaxDepth,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(i)
	}
	i.env = i.globals
	return i
}

// Interpret runs statements against env, writing print output to out.
func Interpret(statements []ast.Stmt, env *Environment, out io.Writer) error {
	return New(out, WithEnvironment(env)).Interpret(statements)
}

// Globals returns the global frame.
func (i *Interpreter) Globals() *Environment {
	return i.globals
}

// Interpret executes statements in order. The first runtime error stops
// execution and is returned as a *errors.RuntimeError; a failure to write
// print output is returned wrapped.
func (i *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			i.log.Debug("execution aborted", "error", err)
			return err
		}
	}
	return nil
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	if err := i.enter(stmt); err != nil {
		return err
	}
	defer i.leave()

	_, err := ast.AcceptStmt[struct{}](stmt, i)
	return err
}

func (i *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	if err := i.enter(expr); err != nil {
		return nil, err
	}
	defer i.leave()

	return ast.AcceptExpr[value.Value](expr, i)
}

// executeBlock runs statements in env and restores the previous frame on
// every exit path.
func (i *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, stmt := range statements {
		if err := i.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// VisitBlock executes a block in a new frame.
func (i *Interpreter) VisitBlock(s *ast.Block) (struct{}, error) {
	return struct{}{}, i.executeBlock(s.Statements, NewEnvironment(i.env))
}

// VisitExpression evaluates an expression and discards the result.
func (i *Interpreter) VisitExpression(s *ast.Expression) (struct{}, error) {
	_, err := i.evaluate(s.Expression)
	return struct{}{}, err
}

// VisitIf runs one branch depending on the condition's truthiness.
func (i *Interpreter) VisitIf(s *ast.If) (struct{}, error) {
	condition, err := i.evaluate(s.Condition)
	if err != nil {
		return struct{}{}, err
	}
	switch {
	case value.Truthy(condition):
		return struct{}{}, i.execute(s.Then)
	case s.Else != nil:
		return struct{}{}, i.execute(s.Else)
	}
	return struct{}{}, nil
}

// VisitPrint writes the display form of a value followed by a newline.
func (i *Interpreter) VisitPrint(s *ast.Print) (struct{}, error) {
	v, err := i.evaluate(s.Expression)
	if err != nil {
		return struct{}{}, err
	}
	if _, err := fmt.Fprintln(i.out, v.String()); err != nil {
		return struct{}{}, fmt.Errorf("interpreter: write output: %w", err)
	}
	return struct{}{}, nil
}

// VisitWhile runs the body while the condition is truthy.
func (i *Interpreter) VisitWhile(s *ast.While) (struct{}, error) {
	for {
		condition, err := i.evaluate(s.Condition)
		if err != nil {
			return struct{}{}, err
		}
		if !value.Truthy(condition) {
			return struct{}{}, nil
		}
		if err := i.execute(s.Body); err != nil {
			return struct{}{}, err
		}
	}
}

// VisitVar declares a variable in the current frame.
func (i *Interpreter) VisitVar(s *ast.Var) (struct{}, error) {
	var v value.Value
	if s.Initializer != nil {
		var err error
		if v, err = i.evaluate(s.Initializer); err != nil {
			return struct{}{}, err
		}
	}
	i.env.Define(s.Name.Lexeme, v)
	return struct{}{}, nil
}

// VisitAssign stores a value in the nearest frame declaring the name and
// yields that value.
func (i *Interpreter) VisitAssign(e *ast.Assign) (value.Value, error) {
	v, err := i.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if err := i.env.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// VisitBinary evaluates both operands, left first, and applies the operator.
func (i *Interpreter) VisitBinary(e *ast.Binary) (value.Value, error) { //nolint:gocyclo
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.EQUAL_EQUAL:
		return value.Boolean(value.Equal(left, right)), nil
	case token.BANG_EQUAL:
		return value.Boolean(!value.Equal(left, right)), nil
	case token.PLUS:
		if l, r, ok := numbers(left, right); ok {
			return l + r, nil
		}
		return value.String(left.String() + right.String()), nil
	}

	l, r, ok := numbers(left, right)
	if !ok {
		return nil, operandsMustBeNumbers(e.Operator)
	}
	switch e.Operator.Type {
	case token.MINUS:
		return l - r, nil
	case token.STAR:
		return l * r, nil
	case token.SLASH:
		if r == 0 {
			return nil, errors.NewRuntimeError(e.Operator, "Divide by zero.")
		}
		return l / r, nil
	case token.GREATER:
		return value.Boolean(l > r), nil
	case token.GREATER_EQUAL:
		return value.Boolean(l >= r), nil
	case token.LESS:
		return value.Boolean(l < r), nil
	case token.LESS_EQUAL:
		return value.Boolean(l <= r), nil
	}
	panic(fmt.Sprintf("interpreter: unexpected binary operator %q", e.Operator.Lexeme))
}

// VisitGrouping evaluates the inner expression.
func (i *Interpreter) VisitGrouping(e *ast.Grouping) (value.Value, error) {
	return i.evaluate(e.Expression)
}

// VisitLiteral converts a constant into a value.
func (i *Interpreter) VisitLiteral(e *ast.Literal) (value.Value, error) {
	return value.FromLiteral(e.Value), nil
}

// VisitLogical short-circuits and yields whichever operand decided the result.
func (i *Interpreter) VisitLogical(e *ast.Logical) (value.Value, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.OR:
		if value.Truthy(left) {
			return left, nil
		}
	case token.AND:
		if !value.Truthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("interpreter: unexpected logical operator %q", e.Operator.Lexeme))
	}
	return i.evaluate(e.Right)
}

// VisitUnary applies ! or - to its operand.
func (i *Interpreter) VisitUnary(e *ast.Unary) (value.Value, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.BANG:
		return value.Boolean(!value.Truthy(right)), nil
	case token.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, operandsMustBeNumbers(e.Operator)
		}
		return -n, nil
	}
	panic(fmt.Sprintf("interpreter: unexpected unary operator %q", e.Operator.Lexeme))
}

// VisitVariable reads a binding; reading one that was never initialized is
// an error.
func (i *Interpreter) VisitVariable(e *ast.Variable) (value.Value, error) {
	v, err := i.env.Get(e.Name)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NewRuntimeError(e.Name, "Variable not initialized.")
	}
	return v, nil
}

func (i *Interpreter) enter(node ast.Node) error {
	if i.depth >= i.maxDepth {
		return errors.NewRuntimeError(ast.Anchor(node), "Maximum nesting depth exceeded.")
	}
	i.depth++
	return nil
}

func (i *Interpreter) leave() {
	i.depth--
}

func numbers(left, right value.Value) (value.Number, value.Number, bool) {
	l, lok := left.(value.Number)
	r, rok := right.(value.Number)
	return l, r, lok && rok
}

func operandsMustBeNumbers(operator token.Token) error {
	return errors.NewRuntimeError(operator, "Operand(s) must be a number.")
}
