package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/robe/cmd/robe"
	"github.com/arthur-debert/robe/internal/version"
)

func main() {
	rootCmd := robe.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "ROBE",
		Section: "1",
		Source:  "robe " + version.Version,
		Manual:  "robe manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
