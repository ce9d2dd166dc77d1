package main

import (
	"os"

	"ewintr.nl/ytsummary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
