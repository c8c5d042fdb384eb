package main

import "github.com/codemill/javacorpus/internal/cli"

func main() {
	cli.Execute()
}
