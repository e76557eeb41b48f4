package main

import (
	"os"

	"github.com/gwcare/glowy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
