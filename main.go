package main

import (
	"os"

	"github.com/M0hammad-yasin/portfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
