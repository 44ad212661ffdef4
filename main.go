package main

import (
	"os"

	"github.com/kj-requests/kj-requests/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
