package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/staticmcp/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
