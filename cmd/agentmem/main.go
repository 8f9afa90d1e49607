// Package main provides the agentmem CLI: schema initialization plus
// inspection and maintenance of the users and emails catalog.
package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "agentmem:", err)
		os.Exit(exitCode(err))
	}
}
