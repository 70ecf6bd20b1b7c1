// Command lox runs a script, formats it, or starts an interactive prompt.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/KimNorgaard/go-lox"
	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/internal/config"
)

// Exit codes follow the BSD sysexits convention.
const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitSoftware = 70
	exitIOErr    = 74
	exitConfig   = 78
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("lox", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "path to a YAML config `file`")
	format := flags.Bool("fmt", false, "print the script in canonical form instead of running it")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "Usage: lox [-config file] [-fmt] [script]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() > 1 || (*format && flags.NArg() == 0) {
		flags.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	opts := cfg.Options(logger)

	if flags.NArg() == 0 {
		r, err := lox.New(stdout, opts...)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitConfig
		}
		return runPrompt(r, cfg.Prompt, stdin, stdout, stderr)
	}

	path := flags.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIOErr
	}
	logger.Debug("loaded script", "path", path, "bytes", len(source))

	if *format {
		return formatFile(source, opts, stdout, stderr)
	}
	return runFile(source, opts, stdout, stderr)
}

func runFile(source []byte, opts []lox.Option, stdout, stderr io.Writer) int {
	r, err := lox.New(stdout, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	if err := r.Run(string(source)); err != nil {
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func formatFile(source []byte, opts []lox.Option, stdout, stderr io.Writer) int {
	out, err := lox.Format(source, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitCode(err)
	}
	if _, err := stdout.Write(out); err != nil {
		fmt.Fprintln(stderr, err)
		return exitIOErr
	}
	return exitOK
}

// exitCode maps a failed run to its exit status. Static diagnostics take
// precedence over a runtime error.
func exitCode(err error) int {
	var diags errors.List
	if stderrors.As(err, &diags) {
		return exitDataErr
	}
	var rtErr *errors.RuntimeError
	if stderrors.As(err, &rtErr) {
		return exitSoftware
	}
	return exitIOErr
}
