package main

import (
	"os"

	"github.com/hellpig/calculate-pi/cmd/calculate-pi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
