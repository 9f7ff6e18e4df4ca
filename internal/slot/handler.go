package slot

import (
	"errors"
	"net/http"
	"strconv"

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

// ListAvailable serves the public booking form's slot picker.
func (h *Handler) ListAvailable(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Date is required"})
		return
	}

	slots, err := h.service.ListAvailable(c.Request.Context(), dateStr)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, use YYYY-MM-DD"})
			return
		}
		logger.WithError(err).Error("failed to list available slots")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch available slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *Handler) List(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, use YYYY-MM-DD"})
			return
		}
		logger.WithError(err).Error("failed to list slots")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch slots"})
		return
	}

	c.JSON(http.StatusOK, slots)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid date, use YYYY-MM-DD"})
			return
		}
		logger.WithError(err).Error("failed to create slot")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create slot"})
		return
	}

	c.JSON(http.StatusCreated, slot)
}

func (h *Handler) SetAvailability(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	var req UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "available is required"})
		return
	}

	slot, err := h.service.SetAvailability(c.Request.Context(), id, *req.Available)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Time slot not found"})
		return
	}

	c.JSON(http.StatusOK, slot)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid slot ID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Time slot not found"})
			return
		}
		logger.WithError(err).Error("failed to delete slot")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete slot"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

func (h *Handler) GenerateWeek(c *gin.Context) {
	var req BulkGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.GenerateWeek(c.Request.Context(), req.StartDate)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid startDate, use YYYY-MM-DD"})
			return
		}
		logger.WithError(err).Error("failed to generate week slots")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create bulk slots"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": created})
}
