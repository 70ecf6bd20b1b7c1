/*
Package lox implements a small dynamically typed scripting language with
numbers, strings, booleans, nil, global and block scoped variables, and
if/while/for control flow.

A program goes through three stages. The lexer turns source text into
tokens, the parser builds a syntax tree from them, and the interpreter
walks that tree. The stages live in their own packages (lexer, parser,
ast, interpreter) and can be used directly; this package wires them
together.

# Running programs

A Runner keeps one global environment for its whole lifetime, which is what
an interactive prompt needs:

	r, err := lox.New(os.Stdout)
	if err != nil {
		// handle error
	}
	_ = r.Run(`var greeting = "hello";`)
	_ = r.Run(`print greeting + " world";`) // hello world

Run executes every statement that parsed, even when other statements had
syntax errors. The returned error may hold an errors.List with all scan and
parse diagnostics, an *errors.RuntimeError for the first failure during
execution, or both:

	err := r.Run("print 1; var = 2; print 3;")
	var diags errors.List
	if stderrors.As(err, &diags) {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d) // [line 1] Error at '=': Expected variable name.
		}
	}

# Formatting

Format rewrites a program in canonical layout. It never executes code:

	out, err := lox.Format(src, lox.Indent(4))

# Options

MaxDepth bounds how deeply statements and expressions may nest, both when
parsing and when evaluating. Indent sets the indentation used by Format.
WithLogger attaches a *slog.Logger for debug output of the pipeline.
*/
package lox
