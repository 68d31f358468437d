package main

import (
	"os"

	"github.com/dshills/costclip/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
