package main

import (
	"fmt"
	"os"

	"github.com/boreq/guinea"
	"github.com/sid3xyz/slirc/cmd/slirc/commands"
)

func main() {
	if err := guinea.Run(&commands.MainCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
