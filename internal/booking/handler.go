package booking

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

// Create handles the public booking intake form.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "name, email, phone, service, date and time are required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidTimeLabel) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid time"})
			return
		}
		if errors.Is(err, ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid date, use YYYY-MM-DD"})
			return
		}
		logger.WithError(err).Error("failed to create booking")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{Success: true, Booking: created})
}

func (h *Handler) List(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to list bookings")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "status is required"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		default:
			logger.WithError(err).Error("failed to update booking status")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update booking"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to delete booking")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete booking"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "booking deleted"})
}
