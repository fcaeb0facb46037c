package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
)

// ProductHandler manages catalog endpoints.
type ProductHandler struct {
	facade CatalogFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade CatalogFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// List handles GET /api/products. Only available products are exposed.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), true)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// AdminList handles GET /api/admin/products and includes hidden products.
func (h *ProductHandler) AdminList(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context(), false)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), productFromRequest(req))
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*created))
}

// Update handles PUT /api/admin/products?id=N.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product := productFromRequest(req)
	product.ID = id
	updated, err := h.facade.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		writeProductError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*updated))
}

// Delete handles DELETE /api/admin/products?id=N.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteProduct(c.Request.Context(), id); err != nil {
		writeProductError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func productFromRequest(req dto.ProductRequest) model.Product {
	return model.Product{
		Title:     req.Title,
		Type:      model.ProductType(req.Type),
		Price:     req.Price,
		Available: req.Available,
	}
}

func toProductResponse(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        p.ID,
		Title:     p.Title,
		Type:      string(p.Type),
		Price:     p.Price,
		Available: p.Available,
		CreatedAt: p.CreatedAt,
	}
}
