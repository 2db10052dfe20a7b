package main

import (
	"os"

	"github.com/Akhsuna07/contentdeck/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
