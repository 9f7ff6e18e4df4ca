package upload

import (
	"net/http"
	"path/filepath"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/cldxciv/ascendcare/internal/api"
	"github.com/cldxciv/ascendcare/internal/logger"
	"github.com/cldxciv/ascendcare/internal/metrics"
)

var whitespace = regexp.MustCompile(`\s+`)

type Handler struct {
	dir string
}

// NewHandler stores uploads under dir, which must already exist.
func NewHandler(dir string) *Handler {
	return &Handler{dir: dir}
}

type uploadResponse struct {
	Path string `json:"path"`
}

// Save accepts a multipart "file" field, normalizes whitespace in the name to
// hyphens, and returns the public path of the stored file.
func (h *Handler) Save(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		metrics.RecordUpload("rejected")
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "no file provided"})
		return
	}

	filename := whitespace.ReplaceAllString(filepath.Base(file.Filename), "-")

	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, filename)); err != nil {
		metrics.RecordUpload("failed")
		logger.WithError(err).Error("failed to store uploaded file")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "upload failed"})
		return
	}

	metrics.RecordUpload("stored")
	c.JSON(http.StatusOK, uploadResponse{Path: "/" + filename})
}
