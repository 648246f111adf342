package main

import "github.com/mydehq/ryu/internal/cli"

func main() {
	cli.Execute()
}
