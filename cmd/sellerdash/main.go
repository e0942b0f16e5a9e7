// Package main is the entry point for sellerdash.
package main

import (
	"os"

	"github.com/sellerdash/sellerdash/cmd/sellerdash/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
