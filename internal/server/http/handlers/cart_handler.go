package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
	"github.com/bandstand/bandstand/internal/server/http/middleware"
)

// CartHandler manages the server-held shopping cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/cart. An unknown owner yields an empty cart.
func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.facade.Cart(c.Request.Context(), middleware.CartOwnerID(c))
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

// Add handles POST /api/cart/items. A missing owner token mints a new
// cart and hands the token back via cookie and header.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.AddToCart(c.Request.Context(), middleware.CartOwnerID(c), req.ProductID, req.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}

	middleware.SetCartCookie(c, cart.OwnerID)
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

// Update handles PUT /api/cart/items. Quantity zero or below removes
// the line.
func (h *CartHandler) Update(c *gin.Context) {
	var req dto.CartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.UpdateCartLine(c.Request.Context(), middleware.CartOwnerID(c), req.ProductID, req.Quantity)
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

// Remove handles DELETE /api/cart/items?productId=N.
func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("productId"), 10, 64)
	if err != nil || productID <= 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	cart, err := h.facade.RemoveCartLine(c.Request.Context(), middleware.CartOwnerID(c), productID)
	if err != nil {
		writeCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(*cart))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.facade.ClearCart(c.Request.Context(), middleware.CartOwnerID(c)); err != nil {
		writeCartError(c, err)
		return
	}
	middleware.ClearCartCookie(c)
	c.Status(http.StatusNoContent)
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrProductUnavailable):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toCartResponse(cart model.Cart) dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		lines = append(lines, dto.CartLineResponse{
			ProductID: l.ProductID,
			Title:     l.Title,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  l.Subtotal(),
		})
	}
	return dto.CartResponse{
		Lines:      lines,
		TotalItems: cart.TotalItems(),
		TotalPrice: cart.TotalPrice(),
	}
}
