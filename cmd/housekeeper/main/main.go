package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/housekeeper/cmd/housekeeper"
	"github.com/arthur-debert/housekeeper/pkg/errors"
	"github.com/arthur-debert/housekeeper/pkg/style"
)

func main() {
	rootCmd := housekeeper.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		styles := style.For(os.Stderr, false)
		fmt.Fprintln(os.Stderr, styles.Error.Render(fmt.Sprintf("Error: %v", err)))

		// Bad arguments get the usage, I/O failures do not
		if errors.IsErrorCode(err, errors.ErrInvalidInput) {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
