package handlers

import (
	"errors"
	"net/http"

	"aqarhub/internal/domain"
	"aqarhub/internal/http/middleware"
	"aqarhub/internal/i18n"
	"aqarhub/internal/utils"

	"github.com/gin-gonic/gin"
)

func respondFailure(c *gin.Context, status int, msgKey string, fields map[string]string) {
	c.JSON(status, gin.H{
		"success":    false,
		"message":    i18n.T(Lang(c), msgKey),
		"errors":     fields,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps the error taxonomy to HTTP responses. The
// original error is logged for diagnostics but never sent verbatim to
// the client for internal failures.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		var verr domain.ValidationError
		errors.As(err, &verr)
		respondFailure(c, http.StatusBadRequest, "error.validation", verr.FieldMap())
	case domain.IsUnauthorized(err):
		respondFailure(c, http.StatusUnauthorized, "error.unauthorized", nil)
	case domain.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, "error.not_found", nil)
	case domain.IsConflict(err):
		var cerr domain.ConflictError
		errors.As(err, &cerr)
		fields := map[string]string(nil)
		if cerr.Field != "" {
			fields = map[string]string{cerr.Field: cerr.Msg}
		}
		respondFailure(c, http.StatusConflict, "error.conflict", fields)
	case domain.IsReferential(err):
		respondFailure(c, http.StatusConflict, "error.referential", nil)
	case domain.IsPartialBatch(err):
		utils.LogEvent(middleware.GetRequestID(c), "http", "partial_batch", err.Error())
		respondFailure(c, http.StatusConflict, "error.partial_batch", nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		respondFailure(c, http.StatusInternalServerError, "error.internal", nil)
	}
}
