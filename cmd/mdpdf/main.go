// Command mdpdf converts a Markdown manuscript to a journal-formatted PDF.
//
//	mdpdf --src=<path> [--out=<path>] [--outputHTML] [--showTitle] [--browser=<path>]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/automaxprocs/maxprocs"

	mdpdf "github.com/LeafYeeXYZ/MarkdownPDF"
)

const usage = "usage: mdpdf --src=<path> [--out=<path>] [--outputHTML] [--showTitle] [--browser=<path>]"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one conversion and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFatal
	}

	params, err := mdpdf.Resolve(args, cwd, defaultBrowserPath(runtime.GOOS))
	if err != nil {
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return ExitUsage
	}

	svc := mdpdf.New()
	if err := svc.Convert(context.Background(), params); err != nil {
		fmt.Fprintln(stderr, err)
		return exitCodeFor(err)
	}

	fmt.Fprintf(stdout, "Created %s\n", params.Out)
	return ExitSuccess
}
