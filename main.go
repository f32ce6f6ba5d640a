package main

import (
	"os"

	"github.com/antoinepurnelle/resume-companion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
