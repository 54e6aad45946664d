package mdpdf

import (
	"context"
	"fmt"
	"html"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// pdfRenderer abstracts headless-browser pagination to enable testing
// without a browser.
type pdfRenderer interface {
	RenderPDF(ctx context.Context, htmlContent string, opts *renderOptions) ([]byte, error)
}

// renderOptions carries per-document pagination inputs.
type renderOptions struct {
	Title     string // document title for the running head
	ShowTitle bool   // render the title in the page header
}

// A4 paper dimensions and journal margins. Chrome's print API takes
// inches; the submission template specifies centimeters.
const (
	cmPerInch = 2.54

	paperWidthInches  = 21.0 / cmPerInch // ISO A4
	paperHeightInches = 29.7 / cmPerInch

	marginTopInches    = 2.0 / cmPerInch
	marginBottomInches = 2.0 / cmPerInch
	marginLeftInches   = 2.5 / cmPerInch
	marginRightInches  = 2.5 / cmPerInch
)

// headerFooterFontFamily matches the manuscript body so running heads
// render CJK text correctly.
const headerFooterFontFamily = "'Times New Roman', 'SimSun', serif"

// rodRenderer implements pdfRenderer using go-rod against an explicitly
// configured browser binary.
type rodRenderer struct {
	bin     string
	timeout time.Duration
}

var _ pdfRenderer = (*rodRenderer)(nil)

// newRodRenderer creates a rodRenderer bound to the given browser binary.
func newRodRenderer(bin string, timeout time.Duration) *rodRenderer {
	return &rodRenderer{bin: bin, timeout: timeout}
}

// RenderPDF launches the browser, sets the composed document as page
// content directly (no navigation), requests pagination, and returns the
// PDF bytes. The browser process is released on every path.
func (r *rodRenderer) RenderPDF(ctx context.Context, htmlContent string, opts *renderOptions) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l := launcher.New().Bin(r.bin)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserLaunch, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Honor an earlier context deadline over the configured timeout
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).SetDocumentContent(htmlContent); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPrintOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPrintOptions constructs the fixed A4 pagination request with
// header and footer rendering enabled.
func buildPrintOptions(opts *renderOptions) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:          floatPtr(paperWidthInches),
		PaperHeight:         floatPtr(paperHeightInches),
		MarginTop:           floatPtr(marginTopInches),
		MarginBottom:        floatPtr(marginBottomInches),
		MarginLeft:          floatPtr(marginLeftInches),
		MarginRight:         floatPtr(marginRightInches),
		PrintBackground:     true,
		DisplayHeaderFooter: true,
		HeaderTemplate:      buildHeaderTemplate(opts),
		FooterTemplate:      buildFooterTemplate(),
	}
}

// buildHeaderTemplate returns the running-head template. Without
// showTitle the header renders no visible content.
func buildHeaderTemplate(opts *renderOptions) string {
	if opts == nil || !opts.ShowTitle {
		return "<span></span>"
	}
	return fmt.Sprintf(
		`<div style="font-size: 9px; font-family: %s; margin-left: 2.5cm; padding-top: 4px;">%s</div>`,
		headerFooterFontFamily, html.EscapeString(opts.Title),
	)
}

// buildFooterTemplate returns the centered page-number template. Chrome
// substitutes the pageNumber and totalPages spans while printing.
func buildFooterTemplate() string {
	return fmt.Sprintf(
		`<div style="font-size: 9px; font-family: %s; width: 100%%; text-align: center; padding-bottom: 4px;">第 <span class="pageNumber"></span> 页 / 共 <span class="totalPages"></span> 页</div>`,
		headerFooterFontFamily,
	)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
