package main

import (
	"github.com/ANNOMOUSUSER/skribbl-clone2/internal/cli"
)

func main() {
	cli.Execute()
}
