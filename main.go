package main

import (
	"os"

	"github.com/patchfold/patchfold/internal/cli"
)

func main() {
	code, _ := cli.Run(os.Args, nil)
	os.Exit(code)
}
