package main

import (
	"os"

	"github.com/Yusuprozimemet/TyporaX-AI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
