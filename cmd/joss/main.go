// Command joss is the joss interpreter CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"nickandperla.net/joss/pkg/joss"
)

func main() {
	var (
		evalStr   = flag.String("e", "", "Evaluate a joss line")
		file      = flag.String("f", "", "Execute a joss file")
		dump      = flag.Bool("dump", false, "Dump each parsed command before executing it")
		noPrelude = flag.Bool("no-prelude", false, "Disable the default prelude")
	)

	flag.Parse()

	opts := []joss.Option{}
	if *noPrelude {
		opts = append(opts, joss.WithNoPrelude())
	}

	runtime := joss.New(opts...)

	if *file != "" {
		if err := runtime.EvalFile(*file); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *evalStr != "" {
		if err := evalLine(runtime, *evalStr, *dump); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// No -e or -f: run the REPL.
	if *evalStr == "" && *file == "" {
		runREPL(runtime, *dump)
	}
}
