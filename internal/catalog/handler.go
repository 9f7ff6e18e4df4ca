package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cldxciv/ascendcare/internal/api"
	"github.com/cldxciv/ascendcare/internal/logger"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// ListPublic returns active services for the public site.
func (h *Handler) ListPublic(c *gin.Context) {
	services, err := h.catalog.ListActive(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to list services")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	svc, err := h.catalog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) ListAdmin(c *gin.Context) {
	services, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to list services")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch services"})
		return
	}

	c.JSON(http.StatusOK, services)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		logger.WithError(err).Error("failed to create service")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create service"})
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	svc, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		logger.WithError(err).Error("failed to update service")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update service"})
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid service ID"})
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Service not found"})
			return
		}
		logger.WithError(err).Error("failed to delete service")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete service"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
