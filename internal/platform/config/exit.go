package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitFunc           = os.Exit
	stderr   io.Writer = os.Stderr
)

// Exitf writes a formatted message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, format+"\n", args...)
	exitFunc(1)
}
