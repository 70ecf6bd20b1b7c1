package interpreter

import (
	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/token"
	"github.com/KimNorgaard/go-lox/value"
)

// Environment is one scope frame. Frames form a chain through enclosing,
// rooted at the global frame.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// NewEnvironment creates a frame nested in enclosing. A nil enclosing creates
// a global frame.
func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		enclosing: enclosing,
	}
}

// Define binds name in this frame, replacing any existing binding here.
// A nil v declares the name without initializing it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks name up from this frame outward. It returns a nil Value for a
// declared but uninitialized binding.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}
	return nil, undefinedVariable(name)
}

// Assign overwrites the binding of name in the nearest frame that defines
// it. It never creates a binding.
func (e *Environment) Assign(name token.Token, v value.Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = v
			return nil
		}
	}
	return undefinedVariable(name)
}

func undefinedVariable(name token.Token) error {
	return errors.NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}
