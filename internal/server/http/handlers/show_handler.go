package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
)

// ShowHandler manages show calendar endpoints.
type ShowHandler struct {
	facade ShowFacade
}

// NewShowHandler constructs ShowHandler.
func NewShowHandler(facade ShowFacade) *ShowHandler {
	return &ShowHandler{facade: facade}
}

// List handles GET /api/shows. The featured flag narrows the listing.
func (h *ShowHandler) List(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"
	shows, err := h.facade.Shows(c.Request.Context(), featuredOnly)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ShowResponse, 0, len(shows))
	for _, s := range shows {
		response = append(response, toShowResponse(s))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/shows.
func (h *ShowHandler) Create(c *gin.Context) {
	var req dto.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateShow(c.Request.Context(), showFromRequest(req))
	if err != nil {
		writeShowError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toShowResponse(*created))
}

// Update handles PUT /api/admin/shows?id=N.
func (h *ShowHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	var req dto.ShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	show := showFromRequest(req)
	show.ID = id
	updated, err := h.facade.UpdateShow(c.Request.Context(), show)
	if err != nil {
		writeShowError(c, err)
		return
	}
	c.JSON(http.StatusOK, toShowResponse(*updated))
}

// Delete handles DELETE /api/admin/shows?id=N.
func (h *ShowHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteShow(c.Request.Context(), id); err != nil {
		writeShowError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeShowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func showFromRequest(req dto.ShowRequest) model.Show {
	return model.Show{
		Title:       req.Title,
		Venue:       req.Venue,
		Date:        req.Date,
		Time:        req.Time,
		Description: req.Description,
		TicketURL:   req.TicketURL,
		Featured:    req.Featured,
	}
}

func toShowResponse(s model.Show) dto.ShowResponse {
	return dto.ShowResponse{
		ID:          s.ID,
		Title:       s.Title,
		Venue:       s.Venue,
		Date:        s.Date,
		Time:        s.Time,
		Description: s.Description,
		TicketURL:   s.TicketURL,
		Featured:    s.Featured,
	}
}
