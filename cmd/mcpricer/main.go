package main

import "option-mc-pricer/internal/cli"

func main() {
	cli.Execute()
}
