package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
)

const uploadURLPrefix = "/uploads/"

// ImageHandler manages the admin image library.
type ImageHandler struct {
	facade ImageFacade
}

// NewImageHandler constructs ImageHandler.
func NewImageHandler(facade ImageFacade) *ImageHandler {
	return &ImageHandler{facade: facade}
}

// List handles GET /api/admin/images/list.
func (h *ImageHandler) List(c *gin.Context) {
	images, err := h.facade.Images()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ImageResponse, 0, len(images))
	for _, img := range images {
		response = append(response, toImageResponse(img))
	}
	c.JSON(http.StatusOK, response)
}

// Upload handles POST /api/admin/images/upload with a multipart "image" field.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer src.Close()

	saved, err := h.facade.SaveImage(file.Filename, src)
	if err != nil {
		writeImageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toImageResponse(*saved))
}

// Rename handles PUT /api/admin/images/rename.
func (h *ImageHandler) Rename(c *gin.Context) {
	var req dto.ImageRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RenameImage(req.OldName, req.NewName); err != nil {
		writeImageError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/admin/images/delete?name=X.
func (h *ImageHandler) Delete(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteImage(name); err != nil {
		writeImageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeImageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidFilename):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toImageResponse(img model.ImageFile) dto.ImageResponse {
	return dto.ImageResponse{
		Name:       img.Name,
		Size:       img.Size,
		ModifiedAt: img.ModifiedAt,
		URL:        uploadURLPrefix + img.Name,
	}
}
