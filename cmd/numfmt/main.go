package main

import (
	"os"

	"github.com/rpgo/numfmt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
