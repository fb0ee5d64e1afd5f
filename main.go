package main

import (
	"os"

	"github.com/codeminter/codeminter/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
