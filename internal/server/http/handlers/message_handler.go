package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
)

// MessageHandler manages contact form intake and admin triage.
type MessageHandler struct {
	facade MessageFacade
}

// NewMessageHandler constructs MessageHandler.
func NewMessageHandler(facade MessageFacade) *MessageHandler {
	return &MessageHandler{facade: facade}
}

// Submit handles POST /api/contact.
func (h *MessageHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	msg := model.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		EventType: req.EventType,
		EventDate: req.EventDate,
		Message:   req.Message,
	}
	created, err := h.facade.SubmitMessage(c.Request.Context(), msg)
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMessageResponse(*created))
}

// List handles GET /api/admin/contact with optional ?status= filter.
func (h *MessageHandler) List(c *gin.Context) {
	status := model.MessageStatus(c.Query("status"))
	messages, err := h.facade.Messages(c.Request.Context(), status)
	if err != nil {
		writeMessageError(c, err)
		return
	}

	response := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, toMessageResponse(m))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/admin/contact?id=N.
func (h *MessageHandler) UpdateStatus(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	var req dto.MessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.facade.UpdateMessageStatus(c.Request.Context(), id, model.MessageStatus(req.Status))
	if err != nil {
		writeMessageError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMessageResponse(*updated))
}

// Delete handles DELETE /api/admin/contact?id=N.
func (h *MessageHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteMessage(c.Request.Context(), id); err != nil {
		writeMessageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toMessageResponse(m model.ContactMessage) dto.MessageResponse {
	return dto.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		EventType: m.EventType,
		EventDate: m.EventDate,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}
