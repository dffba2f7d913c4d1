package main

import (
	"github.com/guessparty/guessparty/internal/cli"
)

func main() {
	cli.Execute()
}
