package main

import (
	"errors"

	mdpdf "github.com/LeafYeeXYZ/MarkdownPDF"
)

// Exit codes, one per outcome category.
const (
	ExitSuccess = 0 // conversion completed
	ExitFatal   = 1 // I/O, rendering, or browser failure
	ExitUsage   = 2 // parameter error
)

// exitCodeFor maps an error to its exit code. It uses errors.Is to check
// wrapped errors, so callers must wrap with fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, mdpdf.ErrInvalidParams):
		return ExitUsage
	default:
		return ExitFatal
	}
}
