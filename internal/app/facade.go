package app

import (
	"context"
	"io"
	"time"

	"github.com/bandstand/bandstand/internal/assets"
	"github.com/bandstand/bandstand/internal/domain/model"
	pkgAuth "github.com/bandstand/bandstand/internal/pkg/auth"
	"github.com/bandstand/bandstand/internal/usecase"
)

// SiteFacade bundles the use cases behind the single surface the HTTP
// layer and the janitor depend on.
type SiteFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	shows    *usecase.ShowUseCase
	media    *usecase.MediaUseCase
	messages *usecase.MessageUseCase
	carts    *usecase.CartUseCase
	orders   *usecase.OrderUseCase
	images   *assets.Manager
}

// NewSiteFacade constructs the facade.
func NewSiteFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	shows *usecase.ShowUseCase,
	media *usecase.MediaUseCase,
	messages *usecase.MessageUseCase,
	carts *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	images *assets.Manager,
) *SiteFacade {
	return &SiteFacade{
		auth:     auth,
		catalog:  catalog,
		shows:    shows,
		media:    media,
		messages: messages,
		carts:    carts,
		orders:   orders,
		images:   images,
	}
}

func (f *SiteFacade) Authenticate(email, password string) (string, error) {
	return f.auth.Authenticate(email, password)
}

func (f *SiteFacade) ParseToken(token string) (*pkgAuth.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *SiteFacade) Products(ctx context.Context, availableOnly bool) ([]model.Product, error) {
	return f.catalog.List(ctx, availableOnly)
}

func (f *SiteFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *SiteFacade) CreateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, p)
}

func (f *SiteFacade) UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, p)
}

func (f *SiteFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.Delete(ctx, id)
}

func (f *SiteFacade) Shows(ctx context.Context, featuredOnly bool) ([]model.Show, error) {
	return f.shows.List(ctx, featuredOnly)
}

func (f *SiteFacade) CreateShow(ctx context.Context, s model.Show) (*model.Show, error) {
	return f.shows.Create(ctx, s)
}

func (f *SiteFacade) UpdateShow(ctx context.Context, s model.Show) (*model.Show, error) {
	return f.shows.Update(ctx, s)
}

func (f *SiteFacade) DeleteShow(ctx context.Context, id int64) error {
	return f.shows.Delete(ctx, id)
}

func (f *SiteFacade) Media(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error) {
	return f.media.List(ctx, featuredOnly)
}

func (f *SiteFacade) CreateMedia(ctx context.Context, m model.MediaItem) (*model.MediaItem, error) {
	return f.media.Create(ctx, m)
}

func (f *SiteFacade) UpdateMedia(ctx context.Context, m model.MediaItem) (*model.MediaItem, error) {
	return f.media.Update(ctx, m)
}

func (f *SiteFacade) DeleteMedia(ctx context.Context, id int64) error {
	return f.media.Delete(ctx, id)
}

func (f *SiteFacade) SubmitMessage(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
	return f.messages.Submit(ctx, msg)
}

func (f *SiteFacade) Messages(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error) {
	return f.messages.List(ctx, status)
}

func (f *SiteFacade) UpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	return f.messages.UpdateStatus(ctx, id, status)
}

func (f *SiteFacade) DeleteMessage(ctx context.Context, id int64) error {
	return f.messages.Delete(ctx, id)
}

func (f *SiteFacade) Cart(ctx context.Context, ownerID string) (*model.Cart, error) {
	return f.carts.Get(ctx, ownerID)
}

func (f *SiteFacade) AddToCart(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
	return f.carts.Add(ctx, ownerID, productID, quantity)
}

func (f *SiteFacade) UpdateCartLine(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
	return f.carts.Update(ctx, ownerID, productID, quantity)
}

func (f *SiteFacade) RemoveCartLine(ctx context.Context, ownerID string, productID int64) (*model.Cart, error) {
	return f.carts.Remove(ctx, ownerID, productID)
}

func (f *SiteFacade) ClearCart(ctx context.Context, ownerID string) error {
	return f.carts.Clear(ctx, ownerID)
}

func (f *SiteFacade) PurgeStaleCarts(ctx context.Context, olderThan time.Duration, limit int) (int64, error) {
	return f.carts.PurgeStale(ctx, olderThan, limit)
}

func (f *SiteFacade) Checkout(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
	return f.orders.Checkout(ctx, input)
}

func (f *SiteFacade) OrderByNumber(ctx context.Context, number string) (*model.Order, error) {
	return f.orders.GetByNumber(ctx, number)
}

func (f *SiteFacade) OrdersByEmail(ctx context.Context, email string) ([]model.Order, error) {
	return f.orders.ListByEmail(ctx, email)
}

func (f *SiteFacade) Orders(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return f.orders.List(ctx, status)
}

func (f *SiteFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *SiteFacade) Images() ([]model.ImageFile, error) {
	return f.images.List()
}

func (f *SiteFacade) SaveImage(name string, src io.Reader) (*model.ImageFile, error) {
	return f.images.Save(name, src)
}

func (f *SiteFacade) RenameImage(oldName, newName string) error {
	return f.images.Rename(oldName, newName)
}

func (f *SiteFacade) DeleteImage(name string) error {
	return f.images.Delete(name)
}
