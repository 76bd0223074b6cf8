package handler

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/validator"
)

// PathID parses a positive integer route parameter.
func PathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Validation(fmt.Sprintf("invalid %s %q", name, raw), err)
	}
	return id, nil
}

// BindForm binds and validates a urlencoded or multipart form. Every failure
// is a validation error.
func BindForm(c *gin.Context, form interface{}) error {
	if err := c.ShouldBind(form); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return apperrors.Validation("request body too large", err)
		}
		return apperrors.Validation(validator.Describe(err), err)
	}
	return nil
}

// SeeOther redirects after a successful POST.
func SeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
