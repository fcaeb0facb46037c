package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bandstand/bandstand/internal/adapter/payment"
	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/domain/repository"
)

// numberAttempts bounds the uniqueness retry loop for order numbers.
const numberAttempts = 5

// OrderUseCase encapsulates checkout and order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	carts    repository.CartRepository
	payments payment.Client
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, carts repository.CartRepository, payments payment.Client) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, carts: carts, payments: payments}
}

// Checkout validates the request against the catalog, confirms the
// payment capture, and persists the order. The whole request is rejected
// when any referenced product is missing or unavailable; there are no
// partial orders. Line prices and the total are snapshots of catalog
// prices at submission time.
func (u *OrderUseCase) Checkout(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
	if strings.TrimSpace(input.CustomerName) == "" || strings.TrimSpace(input.CustomerEmail) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	// Duplicate product references merge into one line, mirroring the
	// cart's merge semantics.
	merged := make([]model.CheckoutItem, 0, len(input.Items))
	index := make(map[int64]int, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
		if i, ok := index[item.ProductID]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(merged)
		merged = append(merged, item)
	}

	lines := make([]model.OrderLine, 0, len(merged))
	total := decimal.Zero
	for _, item := range merged {
		product, err := u.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Available {
			return nil, domainErrors.ErrProductUnavailable
		}
		line := model.OrderLine{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		}
		lines = append(lines, line)
		total = total.Add(line.Subtotal())
	}

	paymentStatus, err := u.confirmPayment(ctx, input.PaymentRef)
	if err != nil {
		return nil, err
	}

	draft := model.Order{
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		Lines:         lines,
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		PaymentRef:    input.PaymentRef,
		PaymentStatus: paymentStatus,
		Status:        model.OrderStatusProcessing,
	}

	var created *model.Order
	for attempt := 0; attempt < numberAttempts; attempt++ {
		draft.Number = GenerateOrderNumber(time.Now())
		created, err = u.orders.Create(ctx, draft)
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	if created == nil {
		return nil, domainErrors.ErrAlreadyExists
	}

	if input.CartOwnerID != "" {
		// Cart clearing is best-effort; the order is already placed.
		_ = u.carts.Clear(ctx, input.CartOwnerID)
	}

	return created, nil
}

func (u *OrderUseCase) confirmPayment(ctx context.Context, ref string) (model.PaymentStatus, error) {
	confirmation, err := u.payments.FetchCapture(ctx, ref)
	if err != nil {
		if errors.Is(err, payment.ErrCaptureNotFound) {
			return "", domainErrors.ErrPaymentUnverified
		}
		return "", err
	}
	if confirmation.Status != payment.CaptureStatusCompleted {
		return "", domainErrors.ErrPaymentUnverified
	}
	return model.PaymentStatusCompleted, nil
}

// GetByNumber fetches an order with its lines.
func (u *OrderUseCase) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if strings.TrimSpace(number) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.orders.GetByNumber(ctx, number)
}

// ListByEmail returns a customer's orders, newest first.
func (u *OrderUseCase) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.orders.ListByEmail(ctx, email)
}

// List returns all orders, optionally filtered by status.
func (u *OrderUseCase) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	switch status {
	case "", model.OrderStatusProcessing, model.OrderStatusCompleted, model.OrderStatusCancelled:
		return u.orders.List(ctx, status)
	default:
		return nil, domainErrors.ErrInvalidInput
	}
}

// UpdateStatus applies an admin-driven status transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	switch status {
	case model.OrderStatusCompleted, model.OrderStatusCancelled:
		return u.orders.UpdateStatus(ctx, id, status)
	default:
		return nil, domainErrors.ErrInvalidOrderStatus
	}
}
