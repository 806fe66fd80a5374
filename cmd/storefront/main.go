package main

import "furnistore/internal/cli"

func main() {
	cli.Execute()
}
