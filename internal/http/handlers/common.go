package handlers

import (
	"errors"
	"net/http"
	"strings"

	"aqarhub/internal/domain"
	"aqarhub/internal/http/middleware"
	"aqarhub/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Lang resolves the response language for this request.
func Lang(c *gin.Context) string {
	return i18n.Pick(c.Query("lang"), c.GetHeader("Accept-Language"))
}

// t localizes a message key for this request.
func t(c *gin.Context, key string) string {
	return i18n.T(Lang(c), key)
}

// RespondAction sends the uniform success envelope for mutations.
func RespondAction(c *gin.Context, status int, msgKey string) {
	c.JSON(status, domain.ActionResult{
		Success: true,
		Message: i18n.T(Lang(c), msgKey),
	})
}

// RespondError sends a standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"success":    false,
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures the body is present and parsable. Binding
// failures become a field-keyed validation envelope.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, i18n.T(Lang(c), "error.validation"), nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, domain.ActionResult{
			Success: false,
			Message: i18n.T(Lang(c), "error.validation"),
			Errors:  bindingFieldErrors(err),
		})
		return false
	}
	return true
}

// bindingFieldErrors folds validator errors into a field-keyed map.
func bindingFieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_body": "payload is not valid JSON"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "min":
			out[field] = "is too small"
		case "max":
			out[field] = "is too large"
		case "oneof":
			out[field] = "has an unknown value"
		default:
			out[field] = "is invalid"
		}
	}
	return out
}
