package main

import "finpom/internal/cli"

func main() {
	cli.Execute()
}
