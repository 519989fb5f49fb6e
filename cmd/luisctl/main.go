package main

import "github.com/ahmednasr/luis/server/internal/cli"

func main() {
	cli.Execute()
}
