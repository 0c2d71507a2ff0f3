package main

import (
	"os"

	"github.com/paisley/rocdate/cmd/rocdate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
