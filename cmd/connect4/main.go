package main

import "github.com/mcoot/connect4-arena/internal/cli"

func main() {
	cli.Execute()
}
