// Package errors defines the diagnostics reported while scanning, parsing
// and running a program.
//
// Static diagnostics (scan and parse errors) are accumulated into a List so a
// single run can report several. A RuntimeError is fail-fast: the first one
// aborts the remaining statements of a run.
package errors

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-lox/token"
)

// Format renders a diagnostic in the single convention shared by every
// error kind: "[line N] Error<where>: <message>".
func Format(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// Where returns the location fragment for a diagnostic anchored at tok.
// The zero Token has no location.
func Where(tok token.Token) string {
	switch {
	case tok.Type == token.EOF:
		return " at end"
	case tok.Lexeme == "":
		return ""
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

// Kind distinguishes lexical from syntactic diagnostics.
type Kind int

const (
	// Scan marks a lexical error.
	Scan Kind = iota
	// Parse marks a syntax error.
	Parse
)

func (k Kind) String() string {
	if k == Scan {
		return "scan"
	}
	return "parse"
}

// Error is a single static diagnostic.
type Error struct {
	Kind    Kind
	Line    int
	Where   string
	Message string
}

// NewScanError returns a lexical diagnostic. Lexical errors carry no token,
// so the location fragment is empty.
func NewScanError(line int, message string) *Error {
	return &Error{Kind: Scan, Line: line, Message: message}
}

// NewParseError returns a syntax diagnostic anchored at tok.
func NewParseError(tok token.Token, message string) *Error {
	return &Error{Kind: Parse, Line: tok.Line, Where: Where(tok), Message: message}
}

func (e *Error) Error() string {
	return Format(e.Line, e.Where, e.Message)
}

// List is a slice of static diagnostics that implements the error interface.
// This allows returning all problems found in a source at once.
type List []*Error

func (l List) Error() string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Err returns l as an error, or nil if l is empty.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// RuntimeError is raised while evaluating a program.
type RuntimeError struct {
	Token   token.Token
	Message string
}

// NewRuntimeError returns a RuntimeError anchored at tok.
func NewRuntimeError(tok token.Token, message string) *RuntimeError {
	return &RuntimeError{Token: tok, Message: message}
}

func (e *RuntimeError) Error() string {
	return Format(e.Token.Line, Where(e.Token), e.Message)
}
