package validator

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError is one failed rule on one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + " " + e.Message
}

var messages = map[string]string{
	"required": "is required",
	"notblank": "must not be blank",
	"datetime": "must be a date (YYYY-MM-DD)",
	"max":      "is too long",
	"oneof":    "has an unsupported value",
}

var configureOnce sync.Once

// Configure makes gin's binding validator report fields by their form name
// so error messages match what the user sees in the page, and registers the
// notblank rule used by the forms.
func Configure() {
	configureOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
}

// Fields flattens a binding error into per-field messages. Errors that are not
// validator errors (malformed bodies) come back as a single entry.
func Fields(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		msg, ok := messages[e.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed %q", e.Tag())
		}
		out = append(out, FieldError{Field: e.Field(), Message: msg})
	}
	return out
}

// Describe joins Fields into one line.
func Describe(err error) string {
	fields := Fields(err)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, "; ")
}
