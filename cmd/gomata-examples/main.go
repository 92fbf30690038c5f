/*
Gomata-examples runs one of a handful of small demonstration programs built
directly on the gomata core library. Each example mirrors one of the
original project's standalone example programs, rewritten against this
module's API; none of them are the CLI driver for the library (that remains
an external, unimplemented collaborator — see SPEC_FULL.md §1 and §6).

Usage:

	gomata-examples [flags]

The flags are:

	-e, --example NAME
		Which example to run. One of: simple, determinize, complement,
		empty, mintermize, noodlify. Defaults to "simple".

Exit codes follow the library's example-CLI policy: 0 on success, non-zero
on failure, with no stable sub-codes. Failures print a human-readable
message to stderr; no programmatic error value escapes main.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota
	// ExitUnknownExample indicates an unrecognized -e/--example value.
	ExitUnknownExample
	// ExitExampleError indicates the selected example itself failed.
	ExitExampleError
)

var (
	returnCode  = ExitSuccess
	exampleName = pflag.StringP("example", "e", "simple", "Which example to run: simple|determinize|complement|empty|mintermize|noodlify")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	run, ok := examples[*exampleName]
	if !ok {
		fmt.Fprintf(os.Stderr, "ERROR: unrecognized example %q\n", *exampleName)
		returnCode = ExitUnknownExample
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitExampleError
		return
	}
}
