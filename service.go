package mdpdf

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/LeafYeeXYZ/MarkdownPDF/internal/assets"
)

// Service orchestrates the manuscript pipeline: source read, front-matter
// extraction, Markdown rendering, page composition, PDF emission.
type Service struct {
	cfg         serviceConfig
	converter   htmlConverter
	newRenderer func(bin string, timeout time.Duration) pdfRenderer
	stylesheet  string
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// Option configures a Service.
type Option func(*Service)

// WithTimeout sets the pagination timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithStylesheet replaces the embedded journal stylesheet. The bytes are
// opaque to the pipeline and embedded verbatim into the composed document.
func WithStylesheet(css string) Option {
	return func(s *Service) {
		s.stylesheet = css
	}
}

// withRenderer injects a pdfRenderer factory (used by tests to avoid a
// real browser).
func withRenderer(f func(bin string, timeout time.Duration) pdfRenderer) Option {
	return func(s *Service) {
		s.newRenderer = f
	}
}

// New creates a Service with the embedded journal stylesheet.
// Use options to customize behavior (e.g., WithTimeout, WithStylesheet).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:        serviceConfig{timeout: defaultTimeout},
		converter:  newGoldmarkConverter(),
		stylesheet: assets.Stylesheet(),
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create renderer factory if not injected (e.g., by tests)
	if s.newRenderer == nil {
		s.newRenderer = func(bin string, timeout time.Duration) pdfRenderer {
			return newRodRenderer(bin, timeout)
		}
	}

	return s
}

// Convert runs the full pipeline for one resolved parameter set. On
// success the PDF exists at p.Out; with p.OutputHTML the composed HTML is
// written beside the source before pagination starts, so both artifacts
// exist whenever the PDF does. The first failure aborts the pipeline;
// already-written files are not rolled back.
func (s *Service) Convert(ctx context.Context, p *Params) error {
	raw, err := os.ReadFile(p.Src) // #nosec G304 -- source path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	meta, body := splitFrontMatter(string(raw))
	title := meta.Title
	if title == "" {
		title = p.Title()
	}

	fragment, err := s.converter.ToHTML(ctx, body)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	doc := composeDocument(title, s.stylesheet, fragment)

	if p.OutputHTML {
		if err := os.WriteFile(p.HTMLPath(), []byte(doc), 0o644); err != nil { // #nosec G306 -- document artifact, not a secret
			return fmt.Errorf("%w: %v", ErrWriteHTML, err)
		}
	}

	renderer := s.newRenderer(p.Browser, s.cfg.timeout)
	pdf, err := renderer.RenderPDF(ctx, doc, &renderOptions{Title: title, ShowTitle: p.ShowTitle})
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	if err := os.WriteFile(p.Out, pdf, 0o644); err != nil { // #nosec G306 -- document artifact, not a secret
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	return nil
}
