package main

import (
	"fmt"
	"os"

	"github.com/manohar12-max/Qkart-Ecommerce-Application/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
