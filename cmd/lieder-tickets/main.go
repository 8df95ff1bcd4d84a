package main

import "github.com/ohenriksen/lieder-tickets/internal/cli"

func main() {
	cli.Execute()
}
