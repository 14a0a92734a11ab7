package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/rumbo/cmd"
	"github.com/thenoetrevino/rumbo/internal/logging"
)

func main() {
	// The TUI owns the terminal, so file logging is the only place
	// diagnostics can go. A failure here is not fatal.
	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging unavailable: %v\n", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
