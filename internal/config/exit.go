package config

import (
	"fmt"
	"os"
)

// Exitf prints a boardgen failure to stderr and exits with status 1.
// Usage errors exit with status 2 from main instead.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
