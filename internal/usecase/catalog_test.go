package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	testhelpers "github.com/bandstand/bandstand/internal/test"
)

func TestCatalogUseCaseCreateValidation(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.NewProductRepositoryStub())
	ctx := context.Background()

	cases := []struct {
		name    string
		product model.Product
	}{
		{"empty title", model.Product{Type: model.ProductTypeSong}},
		{"bad type", model.Product{Title: "Single", Type: "vinyl"}},
		{"negative price", model.Product{Title: "Single", Type: model.ProductTypeSong, Price: decimal.RequireFromString("-1")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Create(ctx, tc.product); err != domainErrors.ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	created, err := uc.Create(ctx, model.Product{Title: "Single", Type: model.ProductTypeSong, Price: decimal.RequireFromString("0.99"), Available: true})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCatalogUseCaseListFiltersAvailability(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	repo.Seed("Visible", "0.99", true)
	repo.Seed("Hidden", "1.99", false)
	uc := NewCatalogUseCase(repo)
	ctx := context.Background()

	available, err := uc.List(ctx, true)
	if err != nil || len(available) != 1 {
		t.Fatalf("expected one available product, got %v (%v)", available, err)
	}

	all, err := uc.List(ctx, false)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected two products, got %v (%v)", all, err)
	}
}

func TestCatalogUseCaseUpdateMissing(t *testing.T) {
	uc := NewCatalogUseCase(testhelpers.NewProductRepositoryStub())
	_, err := uc.Update(context.Background(), model.Product{ID: 404, Title: "Gone", Type: model.ProductTypeSong})
	if err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShowUseCaseValidation(t *testing.T) {
	uc := NewShowUseCase(&testhelpers.ShowRepositoryStub{})
	ctx := context.Background()

	if _, err := uc.Create(ctx, model.Show{}); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty show, got %v", err)
	}

	created, err := uc.Create(ctx, model.Show{Title: "Summer tour", Venue: "The Troubadour", Date: time.Now()})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestShowUseCaseListFeatured(t *testing.T) {
	repo := &testhelpers.ShowRepositoryStub{}
	uc := NewShowUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Create(ctx, model.Show{Title: "A", Venue: "V1", Date: time.Now(), Featured: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Create(ctx, model.Show{Title: "B", Venue: "V2", Date: time.Now()}); err != nil {
		t.Fatal(err)
	}

	featured, err := uc.List(ctx, true)
	if err != nil || len(featured) != 1 {
		t.Fatalf("expected one featured show, got %v (%v)", featured, err)
	}
}

func TestMediaUseCaseValidation(t *testing.T) {
	uc := NewMediaUseCase(&testhelpers.MediaRepositoryStub{})
	ctx := context.Background()

	if _, err := uc.Create(ctx, model.MediaItem{Title: "Clip", Type: "hologram", URL: "https://example.com"}); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad type, got %v", err)
	}
	if _, err := uc.Create(ctx, model.MediaItem{Title: "Clip", Type: model.MediaTypeVideo}); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for missing url, got %v", err)
	}

	created, err := uc.Create(ctx, model.MediaItem{Title: "Clip", Type: model.MediaTypeVideo, URL: "https://example.com/v"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestMessageUseCaseSubmit(t *testing.T) {
	repo := &testhelpers.MessageRepositoryStub{}
	uc := NewMessageUseCase(repo)
	ctx := context.Background()

	if _, err := uc.Submit(ctx, model.ContactMessage{Name: "Fan"}); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	created, err := uc.Submit(ctx, model.ContactMessage{
		Name:    "Fan",
		Email:   "fan@example.com",
		Message: "Booking inquiry",
		Status:  model.MessageStatusReplied, // client-supplied status is ignored
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if created.Status != model.MessageStatusNew {
		t.Fatalf("expected new status, got %s", created.Status)
	}
}

func TestMessageUseCaseStatusValidation(t *testing.T) {
	repo := &testhelpers.MessageRepositoryStub{}
	uc := NewMessageUseCase(repo)
	ctx := context.Background()

	msg, err := uc.Submit(ctx, model.ContactMessage{Name: "Fan", Email: "fan@example.com", Message: "hi"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := uc.UpdateStatus(ctx, msg.ID, "archived"); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	updated, err := uc.UpdateStatus(ctx, msg.ID, model.MessageStatusRead)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != model.MessageStatusRead {
		t.Fatalf("unexpected status %s", updated.Status)
	}

	if _, err := uc.List(ctx, "bogus"); err != domainErrors.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad filter, got %v", err)
	}
	read, err := uc.List(ctx, model.MessageStatusRead)
	if err != nil || len(read) != 1 {
		t.Fatalf("expected one read message, got %v (%v)", read, err)
	}
}
