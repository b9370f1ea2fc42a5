package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitFunc             = os.Exit
	stderr     io.Writer = os.Stderr
	exitStatus           = 1
)

// Exitf writes a formatted error message to stderr and exits with status 1.
// Command entry points use it for configuration and run failures.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exitFunc(exitStatus)
}
