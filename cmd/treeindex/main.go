package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/treeindex/pkg/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdout, kong.UsageOnError()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
