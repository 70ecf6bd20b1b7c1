//go:build go1.18

package lox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-lox"
	"github.com/stretchr/testify/require"
)

// FuzzFormat checks that scanning and parsing never panic and that
// formatting is stable. Programs are never executed, since fuzzed input can
// loop forever.
func FuzzFormat(f *testing.F) {
	// Seed the corpus with the programs from the testdata directory.
	// This gives the fuzzer good starting points for valid syntax.
	seedFiles, err := filepath.Glob("testdata/*.lox")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}

	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	// Add some simple but important edge cases manually.
	f.Add([]byte(""))
	f.Add([]byte("{}"))
	f.Add([]byte("print -1;"))
	f.Add([]byte(`print "a" + "b";`))
	f.Add([]byte("a = b = c;"))
	f.Add([]byte("if (a) if (b) print 1; else print 2;"))
	f.Add([]byte("/* unterminated"))

	f.Fuzz(func(t *testing.T, src []byte) {
		// 1. Invalid programs are expected. The fuzz engine detects panics
		// automatically, so we can just return.
		formatted, err := lox.Format(src)
		if err != nil {
			return
		}

		// 2. Our own output must parse again and format to the same text.
		// Loops in while form nest deeper than the for loops they came
		// from, so only the nesting limit may reject the second pass.
		again, err := lox.Format(formatted)
		if err != nil {
			require.True(t, strings.Contains(err.Error(), "Too much nesting."), "Format failed on its own output: %v", err)
			return
		}
		require.Equal(t, string(formatted), string(again), "Format is not idempotent")
	})
}
