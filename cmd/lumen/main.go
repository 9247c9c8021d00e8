// Command lumen is the CLI/REPL front end: `lumen script.lum` runs a
// file, `lumen` with no arguments drops into an interactive prompt
// when stdin is a terminal.
package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/langerr"
	"github.com/lumen-lang/lumen/internal/runtime"
	"github.com/lumen-lang/lumen/pkg/embed"
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		runREPL()
		return
	}
	if err := runFile(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	vm := embed.New()
	start := time.Now()
	result, err := vm.Run(string(src))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if _, ok := result.(runtime.Empty); !ok {
		s, _ := runtime.ToString(noSpan, result)
		fmt.Println(s)
	}
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "ran in %s\n", humanize.RelTime(start, start.Add(elapsed), "", ""))
	}
	return nil
}

func runREPL() {
	fmt.Printf("lumen %s\n", config.Version)
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	vm := embed.New()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result, err := vm.Run(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err))
			continue
		}
		if _, ok := result.(runtime.Empty); ok {
			continue
		}
		s, err := runtime.ToString(noSpan, result)
		if err != nil {
			fmt.Fprintln(os.Stderr, formatError(err))
			continue
		}
		fmt.Println(s)
	}
}

var noSpan ast.Span

func formatError(err error) string {
	if le, ok := err.(*langerr.Error); ok {
		return fmt.Sprintf("%s:%d:%d: %s", le.Kind, le.Span.Start.Line, le.Span.Start.Column, le.Message)
	}
	return err.Error()
}
