package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bandstand/bandstand/internal/adapter/payment"
	"github.com/bandstand/bandstand/internal/assets"
	"github.com/bandstand/bandstand/internal/config"
	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	testhelpers "github.com/bandstand/bandstand/internal/test"
	"github.com/bandstand/bandstand/internal/usecase"
)

func newFacade(t *testing.T) (*SiteFacade, *testhelpers.ProductRepositoryStub, *testhelpers.CartRepositoryStub, *testhelpers.OrderRepositoryStub) {
	t.Helper()

	cfg := &config.Config{AdminEmail: "admin@example.com", AdminPasswordHash: "hash:secret"}
	authUC := usecase.NewAuthUseCase(cfg, testhelpers.HasherStub{}, testhelpers.StrategyStub{})

	products := testhelpers.NewProductRepositoryStub()
	carts := testhelpers.NewCartRepositoryStub()
	orders := testhelpers.NewOrderRepositoryStub()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager, err := assets.NewManager(t.TempDir(), t.TempDir(), logger)
	if err != nil {
		t.Fatalf("manager init failed: %v", err)
	}

	facade := NewSiteFacade(
		authUC,
		usecase.NewCatalogUseCase(products),
		usecase.NewShowUseCase(&testhelpers.ShowRepositoryStub{}),
		usecase.NewMediaUseCase(&testhelpers.MediaRepositoryStub{}),
		usecase.NewMessageUseCase(&testhelpers.MessageRepositoryStub{}),
		usecase.NewCartUseCase(carts, products),
		usecase.NewOrderUseCase(orders, products, carts, payment.TrustingClient{}),
		manager,
	)
	return facade, products, carts, orders
}

func TestSiteFacadeAuth(t *testing.T) {
	facade, _, _, _ := newFacade(t)

	token, err := facade.Authenticate("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, err := facade.Authenticate("admin@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	identity, err := facade.ParseToken("token")
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if identity.UserID != 1 {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestSiteFacadeCartFlow(t *testing.T) {
	facade, products, _, _ := newFacade(t)
	p := products.Seed("Single", "0.99", true)

	cart, err := facade.AddToCart(context.Background(), "", p.ID, 2)
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	if cart.OwnerID == "" {
		t.Fatalf("expected minted owner id")
	}
	if cart.TotalItems() != 2 {
		t.Fatalf("expected two items, got %d", cart.TotalItems())
	}

	cart, err = facade.UpdateCartLine(context.Background(), cart.OwnerID, p.ID, 0)
	if err != nil {
		t.Fatalf("update cart failed: %v", err)
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart after zero quantity, got %+v", cart.Lines)
	}
}

func TestSiteFacadeCheckoutClearsCart(t *testing.T) {
	facade, products, carts, orders := newFacade(t)
	p := products.Seed("Album", "9.99", true)

	cart, err := facade.AddToCart(context.Background(), "", p.ID, 1)
	if err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	order, err := facade.Checkout(context.Background(), model.CheckoutInput{
		CustomerName:  "Fan",
		CustomerEmail: "fan@example.com",
		Items:         []model.CheckoutItem{{ProductID: p.ID, Quantity: 1}},
		CartOwnerID:   cart.OwnerID,
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if order.Status != model.OrderStatusProcessing {
		t.Fatalf("unexpected status %s", order.Status)
	}
	if !order.Total.Equal(p.Price) {
		t.Fatalf("expected total %s, got %s", p.Price, order.Total)
	}
	if len(orders.Orders) != 1 {
		t.Fatalf("expected one stored order")
	}
	if len(carts.Lines[cart.OwnerID]) != 0 {
		t.Fatalf("expected cart cleared after checkout")
	}
}

func TestSiteFacadePurgeStaleCarts(t *testing.T) {
	facade, products, carts, _ := newFacade(t)
	p := products.Seed("Single", "0.99", true)

	if _, err := facade.AddToCart(context.Background(), "stale-owner", p.ID, 1); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}
	lines := carts.Lines["stale-owner"]
	lines[0].AddedAt = time.Now().Add(-48 * time.Hour)
	carts.Lines["stale-owner"] = lines

	removed, err := facade.PurgeStaleCarts(context.Background(), 24*time.Hour, 100)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected one removed line, got %d", removed)
	}
}

func TestSiteFacadeImages(t *testing.T) {
	facade, _, _, _ := newFacade(t)

	saved, err := facade.SaveImage("cover.jpg", strings.NewReader("image bytes"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.Name != "cover.jpg" {
		t.Fatalf("unexpected name %q", saved.Name)
	}

	images, err := facade.Images()
	if err != nil || len(images) != 1 {
		t.Fatalf("expected one image, got %v (%v)", images, err)
	}

	if err := facade.RenameImage("cover.jpg", "front.jpg"); err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if err := facade.DeleteImage("front.jpg"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := facade.DeleteImage("front.jpg"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
