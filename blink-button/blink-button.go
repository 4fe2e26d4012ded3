package main

import (
	"github.com/oshokin/blink-button/cmd/blink-button/cmd"
)

func main() {
	cmd.Execute()
}
