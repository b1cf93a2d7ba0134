package handlers

import (
	"net/http"

	"aqarhub/internal/domain"
	"aqarhub/internal/http/middleware"
	"aqarhub/internal/services"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 15 << 20 // 15 MB

// POST /api/admin/listings/:id/images  (multipart field "file")
func UploadListingImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file is required"})
		return
	}
	if header.Size > maxUploadBytes {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file is too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to read upload", Err: err})
		return
	}
	defer file.Close()

	svc := services.MediaService{RequestID: middleware.GetRequestID(c)}
	img, err := svc.Upload(c.Request.Context(), id, file, header.Size,
		header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": t(c, "media.uploaded"),
		"image":   img,
	})
}

// DELETE /api/admin/images/:id
func DeleteListingImage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	svc := services.MediaService{RequestID: middleware.GetRequestID(c)}
	if err := svc.Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondAction(c, http.StatusOK, "media.deleted")
}
