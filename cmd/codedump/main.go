package main

import (
	"os"

	"github.com/dshills/codedump/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
