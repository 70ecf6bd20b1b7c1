package lox

import (
	"bytes"

	"github.com/KimNorgaard/go-lox/internal/formatter"
)

// Format parses source and returns it in canonical layout: one statement
// per line, blocks indented by the Indent option (two spaces by default) and
// for loops shown in their while form.
//
// Source with scan or parse errors is not formatted; the diagnostics are
// returned as an errors.List.
func Format(source []byte, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	stmts, diags := compile(string(source), o)
	if err := diags.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := formatter.New(&buf, o.indent).Format(stmts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
