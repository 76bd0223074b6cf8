package web

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{
		"home.html", "reception.html", "new_patient.html", "view_patient.html",
		"new_appointment.html", "doctor.html", "doctor_view_patient.html",
		"update_patient.html", "doctor_new_prescription.html", "prescription.html", "error.html",
	} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestErrorPage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "error.html", map[string]interface{}{
		"Title":   "Not Found",
		"Message": "patient not found",
	}))
	assert.Contains(t, buf.String(), `<p id="error">patient not found</p>`)
}

func TestEveryPartialIsUsed(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var sources strings.Builder
	require.NoError(t, fs.WalkDir(files, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(files, path)
		sources.Write(b)
		return err
	}))

	for _, tt := range tmpl.Templates() {
		name := tt.Name()
		if strings.HasSuffix(name, ".html") {
			continue
		}
		assert.Contains(t, sources.String(), `{{template "`+name+`"`, name)
	}
}
