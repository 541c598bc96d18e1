package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/housekeeper/cmd/housekeeper"
	"github.com/arthur-debert/housekeeper/internal/version"
)

func main() {
	rootCmd := housekeeper.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "HOUSEKEEPER",
		Section: "1",
		Source:  "housekeeper " + version.Version,
		Manual:  "housekeeper manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
