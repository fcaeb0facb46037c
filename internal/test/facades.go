package test

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bandstand/bandstand/internal/domain/model"
	pkgAuth "github.com/bandstand/bandstand/internal/pkg/auth"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	AuthenticateFn func(email, password string) (string, error)
	ParseFn        func(token string) (*pkgAuth.Identity, error)
}

// Authenticate delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) Authenticate(email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(email, password)
	}
	return "token", nil
}

// ParseToken delegates to provided function or returns the admin identity.
func (s AuthFacadeStub) ParseToken(token string) (*pkgAuth.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return &pkgAuth.Identity{UserID: 1, Email: "admin@example.com"}, nil
}

// CatalogFacadeStub simulates product catalog operations.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context, bool) ([]model.Product, error)
	ProductFn  func(context.Context, int64) (*model.Product, error)
	CreateFn   func(context.Context, model.Product) (*model.Product, error)
	UpdateFn   func(context.Context, model.Product) (*model.Product, error)
	DeleteFn   func(context.Context, int64) error
}

// Products returns configured listing or a single default product.
func (s CatalogFacadeStub) Products(ctx context.Context, availableOnly bool) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, availableOnly)
	}
	return []model.Product{{ID: 1, Title: "Single", Type: model.ProductTypeSong, Price: decimal.RequireFromString("0.99"), Available: true}}, nil
}

// Product returns configured product or a default one.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Title: "Single", Type: model.ProductTypeSong, Price: decimal.RequireFromString("0.99"), Available: true}, nil
}

// CreateProduct executes configured handler or echoes the product back.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, p)
	}
	p.ID = 1
	return &p, nil
}

// UpdateProduct executes configured handler or echoes the product back.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, p)
	}
	return &p, nil
}

// DeleteProduct executes configured handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ShowFacadeStub simulates show listing operations.
type ShowFacadeStub struct {
	ShowsFn  func(context.Context, bool) ([]model.Show, error)
	CreateFn func(context.Context, model.Show) (*model.Show, error)
	UpdateFn func(context.Context, model.Show) (*model.Show, error)
	DeleteFn func(context.Context, int64) error
}

// Shows returns configured listing or a single default show.
func (s ShowFacadeStub) Shows(ctx context.Context, featuredOnly bool) ([]model.Show, error) {
	if s.ShowsFn != nil {
		return s.ShowsFn(ctx, featuredOnly)
	}
	return []model.Show{{ID: 1, Title: "Summer tour", Venue: "The Troubadour", Date: time.Unix(0, 0)}}, nil
}

// CreateShow executes configured handler or echoes the show back.
func (s ShowFacadeStub) CreateShow(ctx context.Context, show model.Show) (*model.Show, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, show)
	}
	show.ID = 1
	return &show, nil
}

// UpdateShow executes configured handler or echoes the show back.
func (s ShowFacadeStub) UpdateShow(ctx context.Context, show model.Show) (*model.Show, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, show)
	}
	return &show, nil
}

// DeleteShow executes configured handler.
func (s ShowFacadeStub) DeleteShow(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// MediaFacadeStub simulates media gallery operations.
type MediaFacadeStub struct {
	MediaFn  func(context.Context, bool) ([]model.MediaItem, error)
	CreateFn func(context.Context, model.MediaItem) (*model.MediaItem, error)
	UpdateFn func(context.Context, model.MediaItem) (*model.MediaItem, error)
	DeleteFn func(context.Context, int64) error
}

// Media returns configured listing or a single default item.
func (s MediaFacadeStub) Media(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error) {
	if s.MediaFn != nil {
		return s.MediaFn(ctx, featuredOnly)
	}
	return []model.MediaItem{{ID: 1, Title: "Live clip", Type: model.MediaTypeVideo, URL: "https://example.com/v/1"}}, nil
}

// CreateMedia executes configured handler or echoes the item back.
func (s MediaFacadeStub) CreateMedia(ctx context.Context, m model.MediaItem) (*model.MediaItem, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, m)
	}
	m.ID = 1
	return &m, nil
}

// UpdateMedia executes configured handler or echoes the item back.
func (s MediaFacadeStub) UpdateMedia(ctx context.Context, m model.MediaItem) (*model.MediaItem, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, m)
	}
	return &m, nil
}

// DeleteMedia executes configured handler.
func (s MediaFacadeStub) DeleteMedia(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// MessageFacadeStub simulates contact message operations.
type MessageFacadeStub struct {
	SubmitFn       func(context.Context, model.ContactMessage) (*model.ContactMessage, error)
	MessagesFn     func(context.Context, model.MessageStatus) ([]model.ContactMessage, error)
	UpdateStatusFn func(context.Context, int64, model.MessageStatus) (*model.ContactMessage, error)
	DeleteFn       func(context.Context, int64) error
}

// SubmitMessage executes configured handler or echoes the message back.
func (s MessageFacadeStub) SubmitMessage(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, msg)
	}
	msg.ID = 1
	msg.Status = model.MessageStatusNew
	return &msg, nil
}

// Messages returns configured listing or a single default message.
func (s MessageFacadeStub) Messages(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error) {
	if s.MessagesFn != nil {
		return s.MessagesFn(ctx, status)
	}
	return []model.ContactMessage{{ID: 1, Name: "Fan", Email: "fan@example.com", Message: "Hello", Status: model.MessageStatusNew}}, nil
}

// UpdateMessageStatus executes configured handler.
func (s MessageFacadeStub) UpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.ContactMessage{ID: id, Status: status}, nil
}

// DeleteMessage executes configured handler.
func (s MessageFacadeStub) DeleteMessage(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CartFacadeStub simulates server-held cart operations.
type CartFacadeStub struct {
	CartFn   func(context.Context, string) (*model.Cart, error)
	AddFn    func(context.Context, string, int64, int) (*model.Cart, error)
	UpdateFn func(context.Context, string, int64, int) (*model.Cart, error)
	RemoveFn func(context.Context, string, int64) (*model.Cart, error)
	ClearFn  func(context.Context, string) error
}

// Cart returns configured cart or an empty one for the owner.
func (s CartFacadeStub) Cart(ctx context.Context, ownerID string) (*model.Cart, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, ownerID)
	}
	return &model.Cart{OwnerID: ownerID}, nil
}

// AddToCart executes configured handler or returns a one-line cart.
func (s CartFacadeStub) AddToCart(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, ownerID, productID, quantity)
	}
	if ownerID == "" {
		ownerID = "cart-owner"
	}
	return &model.Cart{OwnerID: ownerID, Lines: []model.CartLine{{ProductID: productID, Quantity: quantity, UnitPrice: decimal.RequireFromString("0.99")}}}, nil
}

// UpdateCartLine executes configured handler or returns an adjusted cart.
func (s CartFacadeStub) UpdateCartLine(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, ownerID, productID, quantity)
	}
	if quantity <= 0 {
		return &model.Cart{OwnerID: ownerID}, nil
	}
	return &model.Cart{OwnerID: ownerID, Lines: []model.CartLine{{ProductID: productID, Quantity: quantity, UnitPrice: decimal.RequireFromString("0.99")}}}, nil
}

// RemoveCartLine executes configured handler or returns an empty cart.
func (s CartFacadeStub) RemoveCartLine(ctx context.Context, ownerID string, productID int64) (*model.Cart, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, ownerID, productID)
	}
	return &model.Cart{OwnerID: ownerID}, nil
}

// ClearCart executes configured handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, ownerID string) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, ownerID)
	}
	return nil
}

// OrderFacadeStub simulates checkout and order lifecycle operations.
type OrderFacadeStub struct {
	CheckoutFn     func(context.Context, model.CheckoutInput) (*model.Order, error)
	ByNumberFn     func(context.Context, string) (*model.Order, error)
	ByEmailFn      func(context.Context, string) ([]model.Order, error)
	OrdersFn       func(context.Context, model.OrderStatus) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
}

// Checkout executes configured handler or returns a processing order.
func (s OrderFacadeStub) Checkout(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
	if s.CheckoutFn != nil {
		return s.CheckoutFn(ctx, input)
	}
	return &model.Order{ID: 1, Number: "BND-20240101-ABCDEF", CustomerName: input.CustomerName, CustomerEmail: input.CustomerEmail, Status: model.OrderStatusProcessing}, nil
}

// OrderByNumber returns configured order or a default one.
func (s OrderFacadeStub) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	if s.ByNumberFn != nil {
		return s.ByNumberFn(ctx, number)
	}
	return &model.Order{ID: 1, Number: number, Status: model.OrderStatusProcessing}, nil
}

// OrdersByEmail returns configured history.
func (s OrderFacadeStub) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	if s.ByEmailFn != nil {
		return s.ByEmailFn(ctx, email)
	}
	return []model.Order{{ID: 1, Number: "BND-20240101-ABCDEF", CustomerEmail: email}}, nil
}

// Orders returns configured listing.
func (s OrderFacadeStub) Orders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, status)
	}
	return []model.Order{{ID: 1, Number: "BND-20240101-ABCDEF", Status: model.OrderStatusProcessing}}, nil
}

// UpdateOrderStatus executes configured handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// ImageFacadeStub simulates uploaded image management.
type ImageFacadeStub struct {
	ImagesFn func() ([]model.ImageFile, error)
	SaveFn   func(string, io.Reader) (*model.ImageFile, error)
	RenameFn func(string, string) error
	DeleteFn func(string) error
}

// Images returns configured listing or a single default file.
func (s ImageFacadeStub) Images() ([]model.ImageFile, error) {
	if s.ImagesFn != nil {
		return s.ImagesFn()
	}
	return []model.ImageFile{{Name: "cover.jpg", Size: 1024, ModifiedAt: time.Unix(0, 0)}}, nil
}

// SaveImage executes configured handler or reports the stored file.
func (s ImageFacadeStub) SaveImage(name string, src io.Reader) (*model.ImageFile, error) {
	if s.SaveFn != nil {
		return s.SaveFn(name, src)
	}
	n, err := io.Copy(io.Discard, src)
	if err != nil {
		return nil, err
	}
	return &model.ImageFile{Name: name, Size: n}, nil
}

// RenameImage executes configured handler.
func (s ImageFacadeStub) RenameImage(oldName, newName string) error {
	if s.RenameFn != nil {
		return s.RenameFn(oldName, newName)
	}
	return nil
}

// DeleteImage executes configured handler.
func (s ImageFacadeStub) DeleteImage(name string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(name)
	}
	return nil
}

// SiteFacadeStub aggregates all facade stubs behind the full interface.
type SiteFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	ShowFacadeStub
	MediaFacadeStub
	MessageFacadeStub
	CartFacadeStub
	OrderFacadeStub
	ImageFacadeStub
}

// PurgeCall records a single invocation of PurgeStaleCarts.
type PurgeCall struct {
	OlderThan time.Duration
	Limit     int
}

// JanitorFacadeStub mimics cart purging for the janitor worker.
type JanitorFacadeStub struct {
	PurgeFn func(context.Context, time.Duration, int) (int64, error)
	Calls   []PurgeCall
	mu      sync.Mutex
}

// PurgeStaleCarts records invocations and delegates to the configured handler.
func (s *JanitorFacadeStub) PurgeStaleCarts(ctx context.Context, olderThan time.Duration, limit int) (int64, error) {
	s.mu.Lock()
	s.Calls = append(s.Calls, PurgeCall{OlderThan: olderThan, Limit: limit})
	s.mu.Unlock()
	if s.PurgeFn != nil {
		return s.PurgeFn(ctx, olderThan, limit)
	}
	return 0, nil
}

// CallCount reports how many purge invocations were recorded.
func (s *JanitorFacadeStub) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Calls)
}
