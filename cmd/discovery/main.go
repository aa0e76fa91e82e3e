package main

import "github.com/mchmarny/discovery/pkg/cli"

func main() {
	cli.Execute()
}
