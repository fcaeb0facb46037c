package test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
)

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[int64]*model.Product
	Next     int64
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[int64]*model.Product), Next: 1}
}

// Seed inserts a product with the given attributes and returns it.
func (s *ProductRepositoryStub) Seed(title string, price string, available bool) *model.Product {
	p := &model.Product{
		ID:        s.Next,
		Title:     title,
		Type:      model.ProductTypeSong,
		Price:     decimal.RequireFromString(price),
		Available: available,
		CreatedAt: time.Now(),
	}
	s.Products[p.ID] = p
	s.Next++
	return p
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product.ID = s.Next
	s.Next++
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	s.Products[product.ID] = &product
	return &product, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, availableOnly bool) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if availableOnly && !p.Available {
			continue
		}
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, ok := s.Products[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	product.UpdatedAt = time.Now()
	s.Products[product.ID] = &product
	return &product, nil
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// ShowRepositoryStub stores shows in-memory for tests.
type ShowRepositoryStub struct {
	Shows []model.Show
	Next  int64
	Err   error
}

func (s *ShowRepositoryStub) Create(ctx context.Context, show model.Show) (*model.Show, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	show.ID = s.Next
	show.CreatedAt = time.Now()
	show.UpdatedAt = show.CreatedAt
	s.Shows = append(s.Shows, show)
	return &show, nil
}

func (s *ShowRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Show, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, show := range s.Shows {
		if show.ID == id {
			copied := show
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShowRepositoryStub) List(ctx context.Context, featuredOnly bool) ([]model.Show, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Show
	for _, show := range s.Shows {
		if featuredOnly && !show.Featured {
			continue
		}
		result = append(result, show)
	}
	return result, nil
}

func (s *ShowRepositoryStub) Update(ctx context.Context, show model.Show) (*model.Show, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Shows {
		if s.Shows[i].ID == show.ID {
			show.UpdatedAt = time.Now()
			s.Shows[i] = show
			return &show, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ShowRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Shows {
		if s.Shows[i].ID == id {
			s.Shows = append(s.Shows[:i], s.Shows[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// MediaRepositoryStub stores gallery items in-memory for tests.
type MediaRepositoryStub struct {
	Items []model.MediaItem
	Next  int64
	Err   error
}

func (s *MediaRepositoryStub) Create(ctx context.Context, item model.MediaItem) (*model.MediaItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	item.ID = s.Next
	item.CreatedAt = time.Now()
	s.Items = append(s.Items, item)
	return &item, nil
}

func (s *MediaRepositoryStub) GetByID(ctx context.Context, id int64) (*model.MediaItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, item := range s.Items {
		if item.ID == id {
			copied := item
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MediaRepositoryStub) List(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.MediaItem
	for _, item := range s.Items {
		if featuredOnly && !item.Featured {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *MediaRepositoryStub) Update(ctx context.Context, item model.MediaItem) (*model.MediaItem, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == item.ID {
			s.Items[i] = item
			return &item, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MediaRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// MessageRepositoryStub stores contact messages in-memory for tests.
type MessageRepositoryStub struct {
	Messages []model.ContactMessage
	Next     int64
	Err      error
}

func (s *MessageRepositoryStub) Create(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.Next++
	msg.ID = s.Next
	msg.CreatedAt = time.Now()
	s.Messages = append(s.Messages, msg)
	return &msg, nil
}

func (s *MessageRepositoryStub) List(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.ContactMessage
	for _, msg := range s.Messages {
		if status != "" && msg.Status != status {
			continue
		}
		result = append(result, msg)
	}
	return result, nil
}

func (s *MessageRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages[i].Status = status
			copied := s.Messages[i]
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MessageRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	for i := range s.Messages {
		if s.Messages[i].ID == id {
			s.Messages = append(s.Messages[:i], s.Messages[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CartRepositoryStub stores cart lines in-memory for tests.
type CartRepositoryStub struct {
	Lines map[string][]model.CartLine
	Err   error
}

// NewCartRepositoryStub constructs stub repository with initialized maps.
func NewCartRepositoryStub() *CartRepositoryStub {
	return &CartRepositoryStub{Lines: make(map[string][]model.CartLine)}
}

func (s *CartRepositoryStub) Get(ctx context.Context, ownerID string) (*model.Cart, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	cart := &model.Cart{OwnerID: ownerID}
	cart.Lines = append(cart.Lines, s.Lines[ownerID]...)
	return cart, nil
}

func (s *CartRepositoryStub) AddLine(ctx context.Context, ownerID string, productID int64, title string, unitPrice decimal.Decimal, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	lines := s.Lines[ownerID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			lines[i].AddedAt = time.Now()
			s.Lines[ownerID] = lines
			return nil
		}
	}
	s.Lines[ownerID] = append(lines, model.CartLine{
		ProductID: productID,
		Title:     title,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		AddedAt:   time.Now(),
	})
	return nil
}

func (s *CartRepositoryStub) SetQuantity(ctx context.Context, ownerID string, productID int64, quantity int) error {
	if s.Err != nil {
		return s.Err
	}
	lines := s.Lines[ownerID]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			lines[i].AddedAt = time.Now()
			s.Lines[ownerID] = lines
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *CartRepositoryStub) RemoveLine(ctx context.Context, ownerID string, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	lines := s.Lines[ownerID]
	for i := range lines {
		if lines[i].ProductID == productID {
			s.Lines[ownerID] = append(lines[:i], lines[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *CartRepositoryStub) Clear(ctx context.Context, ownerID string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Lines, ownerID)
	return nil
}

func (s *CartRepositoryStub) DeleteStale(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var removed int64
	for owner, lines := range s.Lines {
		var kept []model.CartLine
		for _, l := range lines {
			if removed < int64(limit) && l.AddedAt.Before(cutoff) {
				removed++
				continue
			}
			kept = append(kept, l)
		}
		if len(kept) == 0 {
			delete(s.Lines, owner)
		} else {
			s.Lines[owner] = kept
		}
	}
	return removed, nil
}

// OrderRepositoryStub stores orders in-memory for tests.
type OrderRepositoryStub struct {
	Orders   []model.Order
	Next     int64
	Err      error
	CreateFn func(context.Context, model.Order) (*model.Order, error)
}

// NewOrderRepositoryStub constructs stub repository.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Next: 1}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Orders {
		if existing.Number == order.Number {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	order.ID = s.Next
	s.Next++
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	s.Orders = append(s.Orders, order)
	return &order, nil
}

func (s *OrderRepositoryStub) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, o := range s.Orders {
		if o.Number == number {
			copied := o
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByEmail(ctx context.Context, email string) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.CustomerEmail == email {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if status == "" || o.Status == status {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			if !s.Orders[i].CanTransitionTo(status) {
				return nil, domainErrors.ErrInvalidOrderStatus
			}
			s.Orders[i].Status = status
			s.Orders[i].UpdatedAt = time.Now()
			copied := s.Orders[i]
			return &copied, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
