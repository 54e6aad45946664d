package mdpdf

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File extensions handled by the pipeline.
const (
	ExtMarkdown = ".md"
	ExtPDF      = ".pdf"
	ExtHTML     = ".html"
)

// Params is the resolved, immutable set of run parameters. Construct it
// with Resolve; never mutate it afterwards.
type Params struct {
	Src        string // absolute path to the Markdown source
	Out        string // absolute path to the PDF output
	OutputHTML bool   // also write the composed HTML beside the source
	ShowTitle  bool   // show the document title in the page header
	Browser    string // browser executable driving pagination
}

// Resolve validates raw CLI arguments and produces Params. Relative paths
// are resolved against cwd. defaultBrowser is the platform-detected
// browser path supplied by the caller; it may be empty, in which case
// --browser is required.
//
// Resolve performs pure path and string computation only; it never
// touches the filesystem.
func Resolve(args []string, cwd, defaultBrowser string) (*Params, error) {
	p := &Params{Browser: defaultBrowser}

	for _, arg := range args {
		key, value, hasValue := strings.Cut(arg, "=")
		switch key {
		case "--src":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("%w: %s requires a value", ErrInvalidParams, key)
			}
			p.Src = resolvePath(cwd, value, ExtMarkdown)
		case "--out":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("%w: %s requires a value", ErrInvalidParams, key)
			}
			p.Out = resolvePath(cwd, value, ExtPDF)
		case "--browser":
			if !hasValue || value == "" {
				return nil, fmt.Errorf("%w: %s requires a value", ErrInvalidParams, key)
			}
			p.Browser = value
		case "--outputHTML":
			if hasValue {
				return nil, fmt.Errorf("%w: %s does not take a value", ErrInvalidParams, key)
			}
			p.OutputHTML = true
		case "--showTitle":
			if hasValue {
				return nil, fmt.Errorf("%w: %s does not take a value", ErrInvalidParams, key)
			}
			p.ShowTitle = true
		default:
			return nil, fmt.Errorf("%w: unrecognized argument %q", ErrInvalidParams, arg)
		}
	}

	if p.Src == "" {
		return nil, fmt.Errorf("%w: --src is required", ErrInvalidParams)
	}
	if p.Out == "" {
		p.Out = strings.TrimSuffix(p.Src, ExtMarkdown) + ExtPDF
	}
	if p.Browser == "" {
		return nil, fmt.Errorf("%w: --browser is required on this platform", ErrInvalidParams)
	}

	return p, nil
}

// resolvePath resolves value against cwd, appending ext unless the value
// already carries it.
func resolvePath(cwd, value, ext string) string {
	if !strings.HasSuffix(value, ext) {
		value += ext
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(cwd, value)
}

// Title derives the document title from the source filename, without the
// Markdown extension.
func (p *Params) Title() string {
	return strings.TrimSuffix(filepath.Base(p.Src), ExtMarkdown)
}

// HTMLPath returns the intermediate HTML output path, beside the source.
func (p *Params) HTMLPath() string {
	return strings.TrimSuffix(p.Src, ExtMarkdown) + ExtHTML
}
