package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"snaplink-be/internal/models"
)

var registerFieldNames sync.Once

// UseWireFieldNames makes validation errors report json/form field names
// instead of Go struct field names.
func UseWireFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})
	})
}

// bindError answers 422 with per-field detail for a request that failed binding.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: validationDetails(err)})
}

func validationDetails(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []models.FieldError{{Field: "body", Message: "Invalid request body: " + err.Error()}}
	}

	details := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "field required"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		default:
			msg = "failed on the '" + fe.Tag() + "' rule"
		}
		details = append(details, models.FieldError{Field: fe.Field(), Message: msg})
	}
	return details
}

func errorDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, models.ErrorResponse{Detail: detail})
}

// internalError logs the cause and answers a generic 500.
func internalError(c *gin.Context, logger *slog.Logger, err error) {
	logger.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	errorDetail(c, http.StatusInternalServerError, "Internal server error")
}
