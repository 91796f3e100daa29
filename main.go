// ABOUTME: Entry point for the pump-head CLI
// ABOUTME: Interactive pump head calculator with scriptable subcommands

package main

import (
	"fmt"
	"os"

	"github.com/markalston/pump-head/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
