package main

import (
	"os"

	"github.com/raysh454/fetchurl/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
