package handlers

import (
	"context"
	"io"

	"github.com/bandstand/bandstand/internal/domain/model"
	pkgAuth "github.com/bandstand/bandstand/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Authenticate(email, password string) (string, error)
	ParseToken(token string) (*pkgAuth.Identity, error)
}

// CatalogFacade encapsulates product catalog operations exposed via HTTP.
type CatalogFacade interface {
	Products(ctx context.Context, availableOnly bool) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, p model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ShowFacade encapsulates show listing operations exposed via HTTP.
type ShowFacade interface {
	Shows(ctx context.Context, featuredOnly bool) ([]model.Show, error)
	CreateShow(ctx context.Context, s model.Show) (*model.Show, error)
	UpdateShow(ctx context.Context, s model.Show) (*model.Show, error)
	DeleteShow(ctx context.Context, id int64) error
}

// MediaFacade encapsulates media gallery operations exposed via HTTP.
type MediaFacade interface {
	Media(ctx context.Context, featuredOnly bool) ([]model.MediaItem, error)
	CreateMedia(ctx context.Context, m model.MediaItem) (*model.MediaItem, error)
	UpdateMedia(ctx context.Context, m model.MediaItem) (*model.MediaItem, error)
	DeleteMedia(ctx context.Context, id int64) error
}

// MessageFacade encapsulates contact message operations exposed via HTTP.
type MessageFacade interface {
	SubmitMessage(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error)
	Messages(ctx context.Context, status model.MessageStatus) ([]model.ContactMessage, error)
	UpdateMessageStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error)
	DeleteMessage(ctx context.Context, id int64) error
}

// CartFacade encapsulates server-held cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, ownerID string) (*model.Cart, error)
	AddToCart(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error)
	UpdateCartLine(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error)
	RemoveCartLine(ctx context.Context, ownerID string, productID int64) (*model.Cart, error)
	ClearCart(ctx context.Context, ownerID string) error
}

// OrderFacade encapsulates checkout and order lifecycle operations.
type OrderFacade interface {
	Checkout(ctx context.Context, input model.CheckoutInput) (*model.Order, error)
	OrderByNumber(ctx context.Context, number string) (*model.Order, error)
	OrdersByEmail(ctx context.Context, email string) ([]model.Order, error)
	Orders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
}

// ImageFacade encapsulates uploaded image management.
type ImageFacade interface {
	Images() ([]model.ImageFile, error)
	SaveImage(name string, src io.Reader) (*model.ImageFile, error)
	RenameImage(oldName, newName string) error
	DeleteImage(name string) error
}

// SiteFacade aggregates the full set of operations used across handlers.
type SiteFacade interface {
	AuthFacade
	CatalogFacade
	ShowFacade
	MediaFacade
	MessageFacade
	CartFacade
	OrderFacade
	ImageFacade
}
