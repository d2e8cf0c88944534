// SPDX-License-Identifier: MIT

// Command friendgraph answers friend-list and connection queries over a
// social network described by a whitespace-delimited edge file.
//
// Usage:
//
//	friendgraph friends 1 -f network.txt
//	friendgraph connect 0 2 -f network.txt
//	friendgraph reach 0 -f network.txt
//	friendgraph components -f network.txt
//	friendgraph stats -f network.txt
//	friendgraph batch pairs.txt -f network.txt
//	friendgraph menu                      # interactive, prompts for the file
//
// A YAML file passed with --config supplies defaults (see package config);
// flags override it.
package main

import (
	"context"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdin, stdout, stderr)
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		a.errorf(describeError(err))
		return 1
	}
	return 0
}
