//go:build unix

package main

import (
	"os"

	"github.com/dansimau/coreutils/pkg/nicecli"
)

func main() {
	os.Exit(nicecli.Run(os.Args[1:]...))
}
