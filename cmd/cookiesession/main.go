package main

import (
	"os"

	"github.com/dmitrymomot/cookiesession/cmd/cookiesession/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
