package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/metrics"
)

// PrescriptionTemplate is the page rendered for printing.
const PrescriptionTemplate = "prescription.html"

var errEmptyDocument = errors.New("converter returned an empty document")

// Renderer renders a named template and converts the markup to PDF.
type Renderer struct {
	templates *template.Template
	converter Converter
	metrics   *metrics.Metrics
}

func NewRenderer(templates *template.Template, converter Converter, m *metrics.Metrics) *Renderer {
	return &Renderer{
		templates: templates,
		converter: converter,
		metrics:   m,
	}
}

// Render executes the template with data and returns the PDF bytes. Template
// failures are internal errors; converter failures and empty output are
// reported as render errors so no partial document reaches the client.
func (r *Renderer) Render(ctx context.Context, name string, data interface{}) (pdf []byte, err error) {
	var html bytes.Buffer
	if err := r.templates.ExecuteTemplate(&html, name, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	start := time.Now()
	defer func() { r.metrics.ObserveRender(start, err) }()

	pdf, err = r.converter.Convert(ctx, html.Bytes())
	if err != nil {
		return nil, apperrors.Render("document conversion failed", err)
	}
	if len(pdf) == 0 {
		return nil, apperrors.Render("document conversion failed", errEmptyDocument)
	}
	return pdf, nil
}

// Filename is the attachment name for a prescription document.
func Filename(prescriptionID int64) string {
	return fmt.Sprintf("prescription_%d.pdf", prescriptionID)
}
