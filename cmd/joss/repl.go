package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danswartzendruber/liner"
	"github.com/goforj/godump"
	"golang.org/x/term"

	"nickandperla.net/joss/internal/parser"
	"nickandperla.net/joss/pkg/joss"
)

const prompt = "> "

// evalLine runs one line, optionally dumping the parsed command tree first.
// The dump path parses a second time; it is a debug aid, not a hot path.
func evalLine(runtime *joss.Runtime, line string, dump bool) error {
	if dump {
		cmd, stored, err := parser.ParseLine(line)
		if err == nil {
			if stored != nil {
				godump.Dump(stored)
			} else {
				godump.Dump(cmd)
			}
		}
	}
	return runtime.Eval(line)
}

func runREPL(runtime *joss.Runtime, dump bool) {
	fmt.Println("joss (Ctrl+D to exit)")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Not a TTY: plain line loop over piped input.
		runBasicREPL(runtime, dump)
		return
	}

	runLinerREPL(runtime, dump)
}

// runBasicREPL handles non-TTY input (piped input).
func runBasicREPL(runtime *joss.Runtime, dump bool) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		report(evalLine(runtime, strings.TrimRight(line, "\r\n"), dump))
	}
}

// runLinerREPL handles interactive input with editing and scrollback
// history for the session.
func runLinerREPL(runtime *joss.Runtime, dump bool) {
	l := liner.NewLiner()
	defer l.Close()

	for {
		line, err := l.Prompt(prompt)
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return
			}
			fmt.Fprintf(os.Stderr, "read error: %v\n", err)
			return
		}
		if strings.TrimSpace(line) != "" {
			l.AppendHistory(line)
		}
		report(evalLine(runtime, line, dump))
	}
}

// report prints a per-line error and lets the session continue; the
// environment keeps whatever happened before the error point.
func report(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
