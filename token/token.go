package token

import (
	"fmt"
	"strconv"
)

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Lexeme  string  // exact source text the token was scanned from
	Literal Literal // scanned constant, nil if the token carries none
	Line    int
}

const (
	// Special tokens
	EOF Type = "EOF" // End of input

	// Literals
	IDENT  Type = "IDENT"  // x, my_var
	STRING Type = "STRING" // "hello world"
	NUMBER Type = "NUMBER" // 123, 1.5

	// Delimiters
	LPAREN    Type = "("
	RPAREN    Type = ")"
	LBRACE    Type = "{"
	RBRACE    Type = "}"
	COMMA     Type = ","
	DOT       Type = "."
	SEMICOLON Type = ";"

	// Operators
	MINUS         Type = "-"
	PLUS          Type = "+"
	SLASH         Type = "/"
	STAR          Type = "*"
	BANG          Type = "!"
	BANG_EQUAL    Type = "!="
	EQUAL         Type = "="
	EQUAL_EQUAL   Type = "=="
	GREATER       Type = ">"
	GREATER_EQUAL Type = ">="
	LESS          Type = "<"
	LESS_EQUAL    Type = "<="

	// Keywords
	AND    Type = "AND"
	CLASS  Type = "CLASS"
	ELSE   Type = "ELSE"
	FALSE  Type = "FALSE"
	FUN    Type = "FUN"
	FOR    Type = "FOR"
	IF     Type = "IF"
	NIL    Type = "NIL"
	OR     Type = "OR"
	PRINT  Type = "PRINT"
	RETURN Type = "RETURN"
	SUPER  Type = "SUPER"
	THIS   Type = "THIS"
	TRUE   Type = "TRUE"
	VAR    Type = "VAR"
	WHILE  Type = "WHILE"
)

var keywords = map[string]Type{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdent checks the keywords table for an identifier.
// If the identifier is a keyword, it returns the keyword's token type.
// Otherwise, it returns IDENT.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %q L%d", t.Type, t.Lexeme, t.Line)
	}
	return fmt.Sprintf("%s %q %s L%d", t.Type, t.Lexeme, t.Literal, t.Line)
}

// Literal is a constant scanned from source or implied by a keyword.
// The set of implementations is closed: Number, String, Bool and Nil.
type Literal interface {
	literal()
	String() string
}

// Number is a numeric literal.
type Number float64

// String is a string literal, without its surrounding quotes.
type String string

// Bool is the literal behind the true and false keywords.
type Bool bool

// Nil is the literal behind the nil keyword.
type Nil struct{}

func (Number) literal() {}
func (String) literal() {}
func (Bool) literal()   {}
func (Nil) literal()    {}

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }
func (s String) String() string { return strconv.Quote(string(s)) }
func (b Bool) String() string   { return strconv.FormatBool(bool(b)) }
func (Nil) String() string      { return "nil" }
