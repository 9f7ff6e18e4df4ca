package pages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cldxciv/ascendcare/internal/api"
	"github.com/cldxciv/ascendcare/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(c *gin.Context) {
	pc, err := h.service.Get(c.Request.Context(), c.Param("page"))
	if err != nil {
		if errors.Is(err, ErrUnknownPage) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to fetch page content")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch page content"})
		return
	}

	c.JSON(http.StatusOK, pc)
}

func (h *Handler) Save(c *gin.Context) {
	var req SaveContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "content is required"})
		return
	}

	pc, err := h.service.Save(c.Request.Context(), c.Param("page"), req.Content)
	if err != nil {
		if errors.Is(err, ErrUnknownPage) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to save page content")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to save page content"})
		return
	}

	c.JSON(http.StatusOK, pc)
}
