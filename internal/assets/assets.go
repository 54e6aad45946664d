// Package assets provides the embedded journal submission stylesheet.
//
// The pipeline treats stylesheet content as opaque bytes; this package is
// only the default supplier. Callers can substitute their own stylesheet
// through the library's options without touching this package.
package assets

import _ "embed"

//go:embed styles/journal.css
var journalCSS string

// Stylesheet returns the journal submission stylesheet.
func Stylesheet() string {
	return journalCSS
}
