package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type fieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// bindError turns a binding failure into a response: 422 with the
// violated field constraints when validation failed, 400 when the body
// could not be parsed at all.
func bindError(ctx *gin.Context, err error) {
	details := validationDetails(err)
	if len(details) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": details,
		})
		return
	}
	ctx.JSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid request format",
		"detail": err.Error(),
	})
}

func validationDetails(err error) []fieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fieldError{
				Field:      strings.ToLower(fe.Field()),
				Constraint: constraintText(fe),
			})
		}
		return details
	}

	// Binding a slice body reports one error per element.
	var serrs binding.SliceValidationError
	if errors.As(err, &serrs) {
		var details []fieldError
		for _, elemErr := range serrs {
			details = append(details, validationDetails(elemErr)...)
		}
		return details
	}
	return nil
}

func constraintText(fe validator.FieldError) string {
	if fe.Param() != "" {
		return fe.Tag() + "=" + fe.Param()
	}
	return fe.Tag()
}

// fieldFailure reports a single constraint violation not expressible as
// a binding tag.
func fieldFailure(ctx *gin.Context, field, constraint string) {
	ctx.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":   "Validation failed",
		"details": []fieldError{{Field: field, Constraint: constraint}},
	})
}
