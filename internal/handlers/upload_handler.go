package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/storage"
)

// ImageUploader stores validated image bytes.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte) (*storage.Uploaded, error)
}

type UploadHandler struct {
	images ImageUploader
}

// NewUploadHandler accepts a nil uploader; uploads then answer 503.
func NewUploadHandler(images ImageUploader) *UploadHandler {
	return &UploadHandler{images: images}
}

func (h *UploadHandler) Image(c *gin.Context) {
	if h.images == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Image storage is not configured.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	if fh.Size > storage.MaxImageBytes {
		httperr.BadRequest(c, "image_too_large", "Image must be at most 5 MiB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.InvalidRequest(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxImageBytes+1))
	if err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	out, err := h.images.Upload(c.Request.Context(), data)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}
