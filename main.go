package main

import "samplers/cli"

func main() {
	cli.Execute()
}
