// Package mdpdf converts a Markdown manuscript into a paginated PDF laid
// out for an academic journal submission template (A4 paper, 2 cm vertical
// and 2.5 cm horizontal margins, centered page-number footer, optional
// running-head title).
//
// # Quick Start
//
// Resolve parameters, then run the pipeline:
//
//	params, err := mdpdf.Resolve([]string{"--src=paper"}, cwd, browserPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := mdpdf.New()
//	if err := svc.Convert(ctx, params); err != nil {
//	    log.Fatal(err)
//	}
//
// # Conversion Pipeline
//
// The pipeline runs strictly in sequence:
//
//  1. Source read and YAML front-matter extraction
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. Page composition (stylesheet, title, body fragment)
//  4. PDF pagination via headless Chrome (go-rod)
//
// With Params.OutputHTML the composed HTML is written beside the source
// before pagination begins, so both artifacts exist whenever the PDF does.
//
// # Errors
//
// Failures fall into two categories. Anything wrapping ErrInvalidParams is
// a parameter error and is reported before rendering starts; every other
// failure (I/O, rendering, browser) is fatal and aborts the pipeline at
// the point it occurs. Nothing is retried.
//
// # Browser Requirements
//
// Pagination requires a Chrome/Chromium binary. The CLI detects a
// platform-default install location; on other platforms the path must be
// supplied explicitly via --browser.
package mdpdf
