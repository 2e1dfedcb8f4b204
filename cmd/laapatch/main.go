// Package main provides the LAAPatch CLI tool.
package main

import (
	"os"

	"github.com/ZacharyZcR/LAAPatch/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
