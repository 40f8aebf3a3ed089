package main

import (
	"os"

	"github.com/passgen/passgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
