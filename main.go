package main

import (
	"os"

	"github.com/lixenwraith/penumbra/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
