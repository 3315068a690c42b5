package main

import (
	"os"

	"github.com/roblox-aurora/cmd-ast/cmd/zr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
