package parser

import (
	"log/slog"
	"slices"

	"github.com/KimNorgaard/go-lox/ast"
	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/token"
)

// DefaultMaxDepth is the default limit on statement and expression nesting.
const DefaultMaxDepth = ast.DefaultMaxDepth

// Option configures a Parser.
type Option func(*Parser)

// MaxDepth limits how deeply statements and expressions may nest. Non-positive
// values are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// Logger sets the logger used for debug output.
func Logger(l *slog.Logger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// Parser holds the state of the parser.
type Parser struct {
	tokens  []token.Token
	current int
	errors  errors.List

	depth    int
	maxDepth int
	log      *slog.Logger
}

// New creates a new parser over tokens, which must end with an EOF token.
func New(tokens []token.Token, opts ...Option) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(slices.Clip(tokens), token.Token{Type: token.EOF, Line: line})
	}
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxDepth,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses tokens into a statement sequence. Malformed declarations are
// reported and skipped; every well-formed declaration is returned.
func Parse(tokens []token.Token, opts ...Option) ([]ast.Stmt, errors.List) {
	p := New(tokens, opts...)
	return p.Parse(), p.Errors()
}

// Errors returns the syntax errors encountered during parsing.
func (p *Parser) Errors() errors.List {
	return p.errors
}

// Parse parses the whole token sequence.
func (p *Parser) Parse() []ast.Stmt {
	statements := []ast.Stmt{}
	for !p.isAtEnd() {
		if stmt := p.declarationOrSync(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declarationOrSync parses one declaration. On failure the error is recorded
// and the parser skips ahead to the next statement boundary.
func (p *Parser) declarationOrSync() ast.Stmt {
	start := p.peek()
	stmt, err := p.declaration()
	if err != nil {
		p.errors = append(p.errors, err)
		p.synchronize()
		return nil
	}
	// Binary and logical chains are built by loops, so the recursion guard
	// alone does not bound the height of the tree. The interpreter counts
	// every node, and so does this check.
	if ast.Depth(stmt, p.maxDepth) > p.maxDepth {
		p.errors = append(p.errors, errors.NewParseError(start, "Too much nesting."))
		return nil
	}
	return stmt
}

// The contract for all productions is that they return a non-nil node or a
// non-nil error. An error aborts the enclosing top-level declaration.

func (p *Parser) declaration() (ast.Stmt, *errors.Error) {
	if p.match(token.VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (ast.Stmt, *errors.Error) {
	name, err := p.consume(token.IDENT, "Expected variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.EQUAL) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.SEMICOLON, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (ast.Stmt, *errors.Error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch {
	case p.match(token.FOR):
		return p.forStatement()
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.PRINT):
		return p.printStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.LBRACE):
		brace := p.previous()
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Brace: brace, Statements: statements}, nil
	}
	return p.expressionStatement()
}

// forStatement lowers a for loop into an optional initializer followed by a
// while loop whose body runs the increment after the original body.
func (p *Parser) forStatement() (ast.Stmt, *errors.Error) {
	keyword := p.previous()
	if _, err := p.consume(token.LPAREN, "Expected '(' after 'for'."); err != nil {
		return nil, err
	}

	var (
		initializer ast.Stmt
		err         *errors.Error
	)
	switch {
	case p.match(token.SEMICOLON):
	case p.match(token.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		if condition, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.SEMICOLON, "Expected ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		if increment, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RPAREN, "Expected ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{Brace: keyword, Statements: []ast.Stmt{body, &ast.Expression{Expression: increment}}}
	}
	if condition == nil {
		condition = &ast.Literal{Token: keyword, Value: token.Bool(true)}
	}
	body = &ast.While{Keyword: keyword, Condition: condition, Body: body}
	if initializer != nil {
		body = &ast.Block{Brace: keyword, Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

func (p *Parser) ifStatement() (ast.Stmt, *errors.Error) {
	keyword := p.previous()
	condition, err := p.parenthesizedCondition("if")
	if err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.ELSE) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return &ast.If{Keyword: keyword, Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (ast.Stmt, *errors.Error) {
	keyword := p.previous()
	condition, err := p.parenthesizedCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.While{Keyword: keyword, Condition: condition, Body: body}, nil
}

func (p *Parser) parenthesizedCondition(keyword string) (ast.Expr, *errors.Error) {
	if _, err := p.consume(token.LPAREN, "Expected '(' after '"+keyword+"'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "Expected ')' after "+keyword+" condition."); err != nil {
		return nil, err
	}
	return condition, nil
}

func (p *Parser) printStatement() (ast.Stmt, *errors.Error) {
	keyword := p.previous()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expected ';' after value."); err != nil {
		return nil, err
	}
	return &ast.Print{Keyword: keyword, Expression: value}, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, *errors.Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.Expression{Expression: expr}, nil
}

// block is entered after the opening brace.
func (p *Parser) block() ([]ast.Stmt, *errors.Error) {
	statements := []ast.Stmt{}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	if _, err := p.consume(token.RBRACE, "Expected '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

func (p *Parser) expression() (ast.Expr, *errors.Error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expr, *errors.Error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		// Reported without unwinding: the parser is not confused, so the
		// left-hand side stands in for the whole expression.
		p.errors = append(p.errors, errors.NewParseError(equals, "Invalid assignment target."))
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, *errors.Error) {
	return p.logical(p.and, token.OR)
}

func (p *Parser) and() (ast.Expr, *errors.Error) {
	return p.logical(p.equality, token.AND)
}

func (p *Parser) equality() (ast.Expr, *errors.Error) {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *Parser) comparison() (ast.Expr, *errors.Error) {
	return p.binary(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *Parser) term() (ast.Expr, *errors.Error) {
	return p.binary(p.factor, token.MINUS, token.PLUS)
}

func (p *Parser) factor() (ast.Expr, *errors.Error) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

type production func() (ast.Expr, *errors.Error)

// binary parses a left-associative chain of operand (op operand)*.
func (p *Parser) binary(operand production, ops ...token.Type) (ast.Expr, *errors.Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) logical(operand production, op token.Type) (ast.Expr, *errors.Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(op) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, *errors.Error) {
	if p.match(token.BANG, token.MINUS) {
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()

		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, *errors.Error) {
	switch {
	case p.match(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: token.Bool(false)}, nil
	case p.match(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: token.Bool(true)}, nil
	case p.match(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: token.Nil{}}, nil
	case p.match(token.NUMBER, token.STRING):
		return &ast.Literal{Token: p.previous(), Value: p.previous().Literal}, nil
	case p.match(token.IDENT):
		return &ast.Variable{Name: p.previous()}, nil
	case p.match(token.LPAREN):
		paren := p.previous()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.Grouping{Paren: paren, Expression: expr}, nil
	}
	return nil, errors.NewParseError(p.peek(), "Expected expression.")
}

// synchronize discards tokens until it is just past a ';' or just before a
// keyword that begins a statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			break
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			p.log.Debug("parser resynchronized", "line", p.peek().Line, "token", p.peek().Lexeme)
			return
		}
		p.advance()
	}
	p.log.Debug("parser resynchronized", "line", p.peek().Line, "token", p.peek().Lexeme)
}

// enter guards recursion depth; every successful call must be paired with leave.
func (p *Parser) enter() *errors.Error {
	if p.depth >= p.maxDepth {
		return errors.NewParseError(p.peek(), "Too much nesting.")
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) match(types ...token.Type) bool {
	if slices.ContainsFunc(types, p.check) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t token.Type, message string) (token.Token, *errors.Error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return token.Token{}, errors.NewParseError(p.peek(), message)
}

func (p *Parser) check(t token.Type) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}
