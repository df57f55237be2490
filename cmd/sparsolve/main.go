// SPDX-License-Identifier: MIT

// Command sparsolve is the command-line front end of the sparse solver
// engine: it ingests Matrix Market coordinate files, runs the LU or Cholesky
// pipelines, and reports solutions and fill statistics.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sparsolve: %v\n", err)
		os.Exit(1)
	}
}
