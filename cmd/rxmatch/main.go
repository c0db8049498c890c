/*
Rxmatch decides whether a piece of text matches a pattern using the rxmatch
regex engine.

Usage:

	rxmatch <pattern> <text>

The flags are:

	-v, --version
		Print the engine version and exit.

Rxmatch prints a one-line diagnostic header followed by "Match!" or
"No match". It exits 0 on any successful decision (match or no match), and
non-zero if arguments are missing or the pattern fails to compile. Rxmatch
reads no environment variables, configuration files, or persisted state.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/youssefhj/rxmatch"
)

const version = "0.1.0"

const (
	// ExitSuccess indicates a decision was reached (match or no match).
	ExitSuccess = iota

	// ExitUsageError indicates missing or extra command-line arguments.
	ExitUsageError

	// ExitCompileError indicates the pattern failed to compile.
	ExitCompileError
)

var (
	returnCode  int
	flagVersion = pflag.BoolP("version", "v", false, "print the engine version and exit")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("rxmatch: unrecoverable panic: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Fprintf(os.Stdout, "rxmatch %s\n", version)
		return
	}

	args := pflag.Args()
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: rxmatch <pattern> <text>\n")
		returnCode = ExitUsageError
		return
	}

	pattern, text := args[0], args[1]

	fmt.Fprintf(os.Stdout, "pattern: %q  text: %q\n", pattern, text)

	ok, err := rxmatch.Match(text, pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile error: %v\n", err)
		returnCode = ExitCompileError
		return
	}

	if ok {
		fmt.Fprintln(os.Stdout, "Match!")
	} else {
		fmt.Fprintln(os.Stdout, "No match")
	}
}
