package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-lox"
)

// runPrompt reads one line at a time and runs it. Every line shares the
// same Runner, so variables survive from one line to the next. Errors are
// reported and the loop goes on.
func runPrompt(r *lox.Runner, prompt string, in io.Reader, out, errOut io.Writer) int {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			break
		}
		if err := r.Run(scanner.Text()); err != nil {
			fmt.Fprintln(errOut, err)
		}
	}
	fmt.Fprintln(out)

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(errOut, err)
		return exitIOErr
	}
	return exitOK
}
