package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
)

// MediaHandler manages gallery endpoints.
type MediaHandler struct {
	facade MediaFacade
}

// NewMediaHandler constructs MediaHandler.
func NewMediaHandler(facade MediaFacade) *MediaHandler {
	return &MediaHandler{facade: facade}
}

// List handles GET /api/media.
func (h *MediaHandler) List(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"
	items, err := h.facade.Media(c.Request.Context(), featuredOnly)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.MediaResponse, 0, len(items))
	for _, m := range items {
		response = append(response, toMediaResponse(m))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/media.
func (h *MediaHandler) Create(c *gin.Context) {
	var req dto.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateMedia(c.Request.Context(), mediaFromRequest(req))
	if err != nil {
		writeMediaError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMediaResponse(*created))
}

// Update handles PUT /api/admin/media?id=N.
func (h *MediaHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	var req dto.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	item := mediaFromRequest(req)
	item.ID = id
	updated, err := h.facade.UpdateMedia(c.Request.Context(), item)
	if err != nil {
		writeMediaError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMediaResponse(*updated))
}

// Delete handles DELETE /api/admin/media?id=N.
func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteMedia(c.Request.Context(), id); err != nil {
		writeMediaError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeMediaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func mediaFromRequest(req dto.MediaRequest) model.MediaItem {
	return model.MediaItem{
		Title:       req.Title,
		Type:        model.MediaType(req.Type),
		URL:         req.URL,
		Description: req.Description,
		Duration:    req.Duration,
		Featured:    req.Featured,
	}
}

func toMediaResponse(m model.MediaItem) dto.MediaResponse {
	return dto.MediaResponse{
		ID:          m.ID,
		Title:       m.Title,
		Type:        string(m.Type),
		URL:         m.URL,
		Description: m.Description,
		Duration:    m.Duration,
		Featured:    m.Featured,
	}
}
