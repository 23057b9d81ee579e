package main

import (
	"os"

	"github.com/dansimau/coreutils/pkg/touchcli"
)

func main() {
	os.Exit(touchcli.Run(os.Args[1:]...))
}
