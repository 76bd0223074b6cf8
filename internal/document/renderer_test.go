package document

import (
	"context"
	"errors"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
)

type fakeConverter struct {
	got []byte
	out []byte
	err error
}

func (f *fakeConverter) Convert(_ context.Context, html []byte) ([]byte, error) {
	f.got = html
	return f.out, f.err
}

var testTemplates = template.Must(template.New(PrescriptionTemplate).Parse(`<p>{{.Medication}} {{.Dosage}}</p>`))

func TestRenderer(t *testing.T) {
	conv := &fakeConverter{out: []byte("%PDF")}
	r := NewRenderer(testTemplates, conv, nil)

	pdf, err := r.Render(context.Background(), PrescriptionTemplate, map[string]string{
		"Medication": "Amoxicillin <500>",
		"Dosage":     "500 mg",
	})

	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf))
	assert.Equal(t, "<p>Amoxicillin &lt;500&gt; 500 mg</p>", string(conv.got))
}

func TestRendererEmptyDocument(t *testing.T) {
	r := NewRenderer(testTemplates, &fakeConverter{}, nil)

	_, err := r.Render(context.Background(), PrescriptionTemplate, map[string]string{})

	assert.True(t, apperrors.Is(err, apperrors.ErrRender))
	assert.ErrorIs(t, err, errEmptyDocument)
}

func TestRendererConverterFailure(t *testing.T) {
	r := NewRenderer(testTemplates, &fakeConverter{err: errors.New("connection refused")}, nil)

	_, err := r.Render(context.Background(), PrescriptionTemplate, map[string]string{})

	assert.True(t, apperrors.Is(err, apperrors.ErrRender))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "prescription_12.pdf", Filename(12))
}
