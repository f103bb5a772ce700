package main

import (
	"fmt"
	"os"
)

func main() {
	cli := NewCLI()
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
