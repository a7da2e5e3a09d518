// rubikscan - CLI for modeling, scrambling, and exporting Rubik's cube states.
package main

import (
	"github.com/rubikscan/rubikscan/internal/cli"
)

func main() {
	cli.Execute()
}
