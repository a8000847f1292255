// Command gophertable prints the truth table of boolean programs.
//
// Programs are read from the command line, from stdin, or typed at a prompt when stdin is a terminal:
//
//	$ gophertable 'a and b'
//	|-------+-------+-------|
//	| a     | b     | F     |
//	|-------+-------+-------|
//	| false | false | false |
//	...
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/crillab/gophertable/internal/shell"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Failed programs were already reported with their source.
		if !errors.Is(err, shell.ErrReported) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
