package main

import "github.com/kobayashik-Faber/shotcheck/internal/cli"

func main() {
	cli.Execute()
}
