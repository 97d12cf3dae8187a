package main

import (
	"fmt"
	"os"

	"fjacquet/spend-summary/cmd/root"
	"fjacquet/spend-summary/cmd/summary"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(summary.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
