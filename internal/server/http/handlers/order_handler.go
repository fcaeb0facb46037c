package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
	"github.com/bandstand/bandstand/internal/server/http/middleware"
)

// OrderHandler manages checkout and order lookups.
type OrderHandler struct {
	orders OrderFacade
	carts  CartFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(orders OrderFacade, carts CartFacade) *OrderHandler {
	return &OrderHandler{orders: orders, carts: carts}
}

// Checkout handles POST /api/orders. Explicit items win; otherwise the
// server-held cart identified by the cart cookie is used.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ownerID := middleware.CartOwnerID(c)
	input := model.CheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		PaymentMethod: req.PaymentMethod,
		PaymentRef:    req.PaymentRef,
		CartOwnerID:   ownerID,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, model.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	if len(input.Items) == 0 && ownerID != "" {
		cart, err := h.carts.Cart(c.Request.Context(), ownerID)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		for _, line := range cart.Lines {
			input.Items = append(input.Items, model.CheckoutItem{ProductID: line.ProductID, Quantity: line.Quantity})
		}
	}

	order, err := h.orders.Checkout(c.Request.Context(), input)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	middleware.ClearCartCookie(c)
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// Lookup handles GET /api/orders with either ?orderNumber= or ?email=.
func (h *OrderHandler) Lookup(c *gin.Context) {
	if number := c.Query("orderNumber"); number != "" {
		order, err := h.orders.OrderByNumber(c.Request.Context(), number)
		if err != nil {
			writeOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*order))
		return
	}

	email := c.Query("email")
	if email == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	orders, err := h.orders.OrdersByEmail(c.Request.Context(), email)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// AdminList handles GET /api/admin/orders with optional ?status= filter.
func (h *OrderHandler) AdminList(c *gin.Context) {
	status := model.OrderStatus(c.Query("status"))
	orders, err := h.orders.Orders(c.Request.Context(), status)
	if err != nil {
		writeOrderError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateStatus handles PUT /api/admin/orders?id=N.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	updated, err := h.orders.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*updated))
}

func writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidInput), errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		c.Status(http.StatusUnprocessableEntity)
	case errors.Is(err, domainErrors.ErrInvalidOrderStatus):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrProductUnavailable):
		c.Status(http.StatusConflict)
	case errors.Is(err, domainErrors.ErrPaymentUnverified):
		c.Status(http.StatusPaymentRequired)
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID: l.ProductID,
			Title:     l.Title,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return dto.OrderResponse{
		ID:            order.ID,
		Number:        order.Number,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Lines:         lines,
		Total:         order.Total,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: string(order.PaymentStatus),
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
	}
}
