package main

import "overview/internal/cli"

func main() {
	cli.Execute()
}
