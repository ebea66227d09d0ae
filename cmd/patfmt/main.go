package main

import "github.com/patlog/patlog/internal/cli"

func main() {
	cli.Execute()
}
