package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/actionkit/cmd/actionkit"
	"github.com/arthur-debert/actionkit/internal/version"
)

func main() {
	rootCmd := actionkit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ACTIONKIT",
		Section: "1",
		Source:  "actionkit " + version.Version,
		Manual:  "actionkit manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
