package main

import (
	"os"

	"github.com/thenoetrevino/flowboard/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
