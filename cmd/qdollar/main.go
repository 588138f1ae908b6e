package main

import (
	"os"

	"github.com/ThatOtherAndrew/qdollar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
