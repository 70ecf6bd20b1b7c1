package lox

import (
	stderrors "errors"
	"io"

	"github.com/KimNorgaard/go-lox/ast"
	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/interpreter"
	"github.com/KimNorgaard/go-lox/lexer"
	"github.com/KimNorgaard/go-lox/parser"
)

// Runner runs programs against a single interpreter, so global variables
// defined by one call to Run are visible to the next.
type Runner struct {
	interp *interpreter.Interpreter
	opts   *options
}

// New returns a Runner that writes print output to out.
func New(out io.Writer, opts ...Option) (*Runner, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	interp := interpreter.New(out,
		interpreter.MaxDepth(o.maxDepth),
		interpreter.Logger(o.logger),
	)
	return &Runner{interp: interp, opts: o}, nil
}

// Run scans, parses and executes source. Every statement that parsed is
// executed, even when other statements had errors.
//
// The returned error is nil on success. Otherwise it wraps an errors.List
// holding the scan and parse diagnostics, a *errors.RuntimeError, or both;
// use errors.As to tell them apart.
func (r *Runner) Run(source string) error {
	stmts, diags := compile(source, r.opts)
	runErr := r.interp.Interpret(stmts)
	return stderrors.Join(diags.Err(), runErr)
}

// compile runs the static stages. Scan errors precede parse errors in the
// returned list.
func compile(source string, o *options) ([]ast.Stmt, errors.List) {
	tokens, scanErrs := lexer.Scan(source)
	o.logger.Debug("scanned", "tokens", len(tokens), "errors", len(scanErrs))

	stmts, parseErrs := parser.Parse(tokens,
		parser.MaxDepth(o.maxDepth),
		parser.Logger(o.logger),
	)
	o.logger.Debug("parsed", "statements", len(stmts), "errors", len(parseErrs))

	var diags errors.List
	diags = append(diags, scanErrs...)
	diags = append(diags, parseErrs...)
	return stmts, diags
}
