package main

import "movierec/internal/cli"

func main() {
	cli.Execute()
}
