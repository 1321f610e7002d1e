// Package main provides the bookshop CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/bookshop/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bookshop:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit code: user-correctable
// failures exit 1, system failures exit 2.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrDuplicateKey),
		errors.Is(err, types.ErrInvalidCredentials),
		errors.Is(err, types.ErrEmptyCart),
		errors.Is(err, types.ErrNotLoggedIn):
		return exitUserError
	default:
		return exitSysError
	}
}
