package mdpdf

import (
	"fmt"
	"html"
)

// documentTemplate is the fixed skeleton for a composed manuscript.
// Placeholders: title, stylesheet, body fragment.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
%s
</style>
</head>
<body>
%s
</body>
</html>
`

// composeDocument assembles the self-contained HTML document fed to the
// PDF emitter. The stylesheet and body fragment are embedded verbatim;
// the title is HTML-escaped. Output is deterministic for identical
// inputs (no timestamps, no randomness).
func composeDocument(title, stylesheet, fragment string) string {
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), stylesheet, fragment)
}
