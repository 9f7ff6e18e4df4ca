package blog

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

// ListPublic returns published posts only.
func (h *Handler) ListPublic(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to list published posts")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to fetch post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) ListAdmin(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		logger.WithError(err).Error("failed to list posts")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title, slug and content are required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to create post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "title, slug and content are required"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPostNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, ErrDuplicateSlug):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
		default:
			logger.WithError(err).Error("failed to update post")
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) SetPublished(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}

	var req SetPublishedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "published is required"})
		return
	}

	updated, err := h.service.SetPublished(c.Request.Context(), id, *req.Published)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to update post status")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to update post status"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
			return
		}
		logger.WithError(err).Error("failed to delete post")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
