package main

import (
	"os"

	"github.com/symmetrysyndicate/symfetch/cmd/symfetch"
)

func main() {
	os.Exit(symfetch.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
