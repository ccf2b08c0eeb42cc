package main

import (
	"os"

	"github.com/grovetools/hookcfg/cli"
	"github.com/grovetools/hookcfg/cmd"
)

func main() {
	os.Exit(cli.Execute(cmd.NewRootCmd()))
}
