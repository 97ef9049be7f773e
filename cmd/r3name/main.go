package main

import (
	"os"

	"github.com/mydehq/r3name/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
