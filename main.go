package main

import "edactl/internal/cli"

func main() {
	cli.Execute()
}
