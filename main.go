package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/Salastil/ytcli/internal"
)

func main() {
	if err := internal.Run(os.Args); err != nil {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintln(os.Stderr, red("error:"), err)
		os.Exit(1)
	}
}
