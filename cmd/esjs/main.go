package main

import (
	"os"

	"github.com/estreejs/esjs/cmd/esjs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
