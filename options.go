package lox

import (
	"fmt"
	"log/slog"

	"github.com/KimNorgaard/go-lox/parser"
)

const defaultMaxDepth = parser.DefaultMaxDepth

// Option configures a Runner or a call to Format.
type Option func(*options) error

type options struct {
	maxDepth int
	indent   *int
	logger   *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth: defaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that sets the maximum nesting depth of
// statements and expressions, both when parsing and when evaluating. This
// prevents stack exhaustion on pathologically nested programs.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("lox: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an Option that sets the number of spaces per nesting level
// used by Format. Zero renders every statement on its own line without
// indentation.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("lox: indent must not be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// WithLogger returns an Option that sets the logger used for debug output.
// By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("lox: nil logger")
		}
		o.logger = l
		return nil
	}
}
