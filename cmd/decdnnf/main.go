// Command decdnnf is the CLI front end over the graph/check/count/enum/
// access/sample/ioformat packages: translation between formats, model
// counting, enumeration, compute-model, direct access, and sampling.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
