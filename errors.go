package mdpdf

import "errors"

// Sentinel errors for pipeline operations.
var (
	// ErrInvalidParams classifies every parameter error. All other
	// sentinels are fatal errors.
	ErrInvalidParams = errors.New("invalid parameters")

	ErrReadSource      = errors.New("failed to read markdown source")
	ErrMarkdownConvert = errors.New("markdown conversion failed")
	ErrWriteHTML       = errors.New("failed to write composed HTML")
	ErrWritePDF        = errors.New("failed to write PDF output")

	// Browser pagination errors.
	ErrBrowserLaunch  = errors.New("failed to launch browser")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
