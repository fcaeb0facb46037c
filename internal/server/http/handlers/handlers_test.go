package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/bandstand/bandstand/internal/domain/errors"
	"github.com/bandstand/bandstand/internal/domain/model"
	"github.com/bandstand/bandstand/internal/server/http/dto"
	testhelpers "github.com/bandstand/bandstand/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	// The registered route must not carry the query string; gin matches
	// on the path portion only.
	route, _, _ := strings.Cut(path, "?")
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var jsonHeaders = map[string]string{"Content-Type": "application/json"}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
	var out dto.LoginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil || out.Token == "" {
		t.Fatalf("expected token in body, got %q (%v)", resp.Body.String(), err)
	}
}

func TestAuthHandlerLoginRejectsBadCredentials(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(email, password string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}})
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginRejectsMalformedBody(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, []byte("{"), jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestProductHandlerListFiltersAvailability(t *testing.T) {
	var gotAvailableOnly bool
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{ProductsFn: func(ctx context.Context, availableOnly bool) ([]model.Product, error) {
		gotAvailableOnly = availableOnly
		return nil, nil
	}})
	resp := performRequest(t, http.MethodGet, "/products", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !gotAvailableOnly {
		t.Fatalf("public listing must request available products only")
	}

	resp = performRequest(t, http.MethodGet, "/admin/products", handler.AdminList, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if gotAvailableOnly {
		t.Fatalf("admin listing must include hidden products")
	}
}

func TestProductHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.ProductRequest{Title: "Album", Type: "album", Available: true})
	resp := performRequest(t, http.MethodPost, "/admin/products", NewProductHandler(testhelpers.CatalogFacadeStub{}).Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var out dto.ProductResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil || out.ID == 0 {
		t.Fatalf("expected created product in body, got %q (%v)", resp.Body.String(), err)
	}
}

func TestProductHandlerUpdateRequiresID(t *testing.T) {
	body, _ := json.Marshal(dto.ProductRequest{Title: "Album"})
	resp := performRequest(t, http.MethodPut, "/admin/products", NewProductHandler(testhelpers.CatalogFacadeStub{}).Update, nil, body, jsonHeaders)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without id, got %d", resp.Code)
	}
}

func TestProductHandlerUpdateNotFound(t *testing.T) {
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{UpdateFn: func(ctx context.Context, p model.Product) (*model.Product, error) {
		return nil, domainErrors.ErrNotFound
	}})
	body, _ := json.Marshal(dto.ProductRequest{Title: "Album"})
	resp := performRequest(t, http.MethodPut, "/admin/products?id=7", handler.Update, nil, body, jsonHeaders)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestProductHandlerDelete(t *testing.T) {
	var deleted int64
	handler := NewProductHandler(testhelpers.CatalogFacadeStub{DeleteFn: func(ctx context.Context, id int64) error {
		deleted = id
		return nil
	}})
	resp := performRequest(t, http.MethodDelete, "/admin/products?id=3", handler.Delete, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if deleted != 3 {
		t.Fatalf("expected id 3 passed to facade, got %d", deleted)
	}
}

func TestShowHandlerListFeaturedFilter(t *testing.T) {
	var gotFeatured bool
	handler := NewShowHandler(testhelpers.ShowFacadeStub{ShowsFn: func(ctx context.Context, featuredOnly bool) ([]model.Show, error) {
		gotFeatured = featuredOnly
		return []model.Show{{ID: 1}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/shows?featured=true", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !gotFeatured {
		t.Fatalf("expected featured filter to be forwarded")
	}
}

func TestShowHandlerCreateInvalidInput(t *testing.T) {
	handler := NewShowHandler(testhelpers.ShowFacadeStub{CreateFn: func(ctx context.Context, s model.Show) (*model.Show, error) {
		return nil, domainErrors.ErrInvalidInput
	}})
	body, _ := json.Marshal(dto.ShowRequest{Venue: ""})
	resp := performRequest(t, http.MethodPost, "/admin/shows", handler.Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestMediaHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.MediaRequest{Title: "Clip", Type: "video", URL: "https://example.com/v"})
	resp := performRequest(t, http.MethodPost, "/admin/media", NewMediaHandler(testhelpers.MediaFacadeStub{}).Create, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}

func TestMessageHandlerSubmit(t *testing.T) {
	var got model.ContactMessage
	handler := NewMessageHandler(testhelpers.MessageFacadeStub{SubmitFn: func(ctx context.Context, msg model.ContactMessage) (*model.ContactMessage, error) {
		got = msg
		msg.ID = 5
		msg.Status = model.MessageStatusNew
		return &msg, nil
	}})
	body, _ := json.Marshal(dto.ContactRequest{Name: "Fan", Email: "fan@example.com", Message: "Play my wedding"})
	resp := performRequest(t, http.MethodPost, "/contact", handler.Submit, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if got.Name != "Fan" || got.Email != "fan@example.com" {
		t.Fatalf("unexpected message passed to facade: %+v", got)
	}
}

func TestMessageHandlerUpdateStatus(t *testing.T) {
	handler := NewMessageHandler(testhelpers.MessageFacadeStub{UpdateStatusFn: func(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
		if id != 9 || status != model.MessageStatusRead {
			t.Fatalf("unexpected args: %d %s", id, status)
		}
		return &model.ContactMessage{ID: id, Status: status}, nil
	}})
	body, _ := json.Marshal(dto.MessageStatusRequest{Status: "read"})
	resp := performRequest(t, http.MethodPut, "/admin/contact?id=9", handler.UpdateStatus, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCartHandlerAddMintsOwner(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{})
	body, _ := json.Marshal(dto.CartAddRequest{ProductID: 1, Quantity: 2})
	resp := performRequest(t, http.MethodPost, "/cart/items", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Header().Get("X-Cart-ID") == "" {
		t.Fatalf("expected cart owner header to be set")
	}
	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	if len(result.Cookies()) == 0 {
		t.Fatalf("expected cart cookie to be set")
	}
}

func TestCartHandlerAddUnavailableProduct(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{AddFn: func(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
		return nil, domainErrors.ErrProductUnavailable
	}})
	body, _ := json.Marshal(dto.CartAddRequest{ProductID: 1, Quantity: 1})
	resp := performRequest(t, http.MethodPost, "/cart/items", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestCartHandlerAddInvalidQuantity(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{AddFn: func(ctx context.Context, ownerID string, productID int64, quantity int) (*model.Cart, error) {
		return nil, domainErrors.ErrInvalidQuantity
	}})
	body, _ := json.Marshal(dto.CartAddRequest{ProductID: 1, Quantity: 0})
	resp := performRequest(t, http.MethodPost, "/cart/items", handler.Add, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestCartHandlerRemoveRequiresProductID(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/cart/items", NewCartHandler(testhelpers.CartFacadeStub{}).Remove, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCartHandlerClear(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/cart", NewCartHandler(testhelpers.CartFacadeStub{}).Clear, nil, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestOrderHandlerCheckout(t *testing.T) {
	var got model.CheckoutInput
	orders := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
		got = input
		return &model.Order{ID: 1, Number: "BND-20240101-ABCDEF", Status: model.OrderStatusProcessing}, nil
	}}
	handler := NewOrderHandler(orders, testhelpers.CartFacadeStub{})
	body, _ := json.Marshal(dto.CheckoutRequest{
		CustomerName:  "Fan",
		CustomerEmail: "fan@example.com",
		Items:         []dto.CheckoutItemRequest{{ProductID: 2, Quantity: 1}},
	})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Checkout, nil, body, jsonHeaders)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != 2 {
		t.Fatalf("unexpected checkout input: %+v", got)
	}
}

func TestOrderHandlerCheckoutUsesCartWhenItemsOmitted(t *testing.T) {
	carts := testhelpers.CartFacadeStub{CartFn: func(ctx context.Context, ownerID string) (*model.Cart, error) {
		return &model.Cart{OwnerID: ownerID, Lines: []model.CartLine{{ProductID: 4, Quantity: 3}}}, nil
	}}
	var got model.CheckoutInput
	orders := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
		got = input
		return &model.Order{ID: 1, Number: "BND-20240101-ABCDEF"}, nil
	}}
	handler := NewOrderHandler(orders, carts)
	body, _ := json.Marshal(dto.CheckoutRequest{CustomerName: "Fan", CustomerEmail: "fan@example.com"})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Checkout, nil, body, map[string]string{
		"Content-Type": "application/json",
		"X-Cart-ID":    "owner-1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	if got.CartOwnerID != "owner-1" {
		t.Fatalf("expected cart owner forwarded, got %q", got.CartOwnerID)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != 4 || got.Items[0].Quantity != 3 {
		t.Fatalf("expected items derived from cart, got %+v", got.Items)
	}
}

func TestOrderHandlerCheckoutEmptyOrder(t *testing.T) {
	orders := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
		return nil, domainErrors.ErrEmptyOrder
	}}
	handler := NewOrderHandler(orders, testhelpers.CartFacadeStub{})
	body, _ := json.Marshal(dto.CheckoutRequest{CustomerName: "Fan", CustomerEmail: "fan@example.com"})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Checkout, nil, body, jsonHeaders)
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}

func TestOrderHandlerCheckoutPaymentRequired(t *testing.T) {
	orders := testhelpers.OrderFacadeStub{CheckoutFn: func(ctx context.Context, input model.CheckoutInput) (*model.Order, error) {
		return nil, domainErrors.ErrPaymentUnverified
	}}
	handler := NewOrderHandler(orders, testhelpers.CartFacadeStub{})
	body, _ := json.Marshal(dto.CheckoutRequest{
		CustomerName:  "Fan",
		CustomerEmail: "fan@example.com",
		Items:         []dto.CheckoutItemRequest{{ProductID: 1, Quantity: 1}},
	})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Checkout, nil, body, jsonHeaders)
	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", resp.Code)
	}
}

func TestOrderHandlerLookupByNumber(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, testhelpers.CartFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders?orderNumber=BND-20240101-ABCDEF", handler.Lookup, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil || out.Number != "BND-20240101-ABCDEF" {
		t.Fatalf("unexpected body %q (%v)", resp.Body.String(), err)
	}
}

func TestOrderHandlerLookupUnknownNumber(t *testing.T) {
	orders := testhelpers.OrderFacadeStub{ByNumberFn: func(ctx context.Context, number string) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}}
	handler := NewOrderHandler(orders, testhelpers.CartFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders?orderNumber=missing", handler.Lookup, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestOrderHandlerLookupRequiresFilter(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{}, testhelpers.CartFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders", handler.Lookup, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatusConflict(t *testing.T) {
	orders := testhelpers.OrderFacadeStub{UpdateStatusFn: func(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
		return nil, domainErrors.ErrInvalidOrderStatus
	}}
	handler := NewOrderHandler(orders, testhelpers.CartFacadeStub{})
	body, _ := json.Marshal(dto.OrderStatusRequest{Status: "completed"})
	resp := performRequest(t, http.MethodPut, "/admin/orders?id=1", handler.UpdateStatus, nil, body, jsonHeaders)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestImageHandlerUpload(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "cover.jpg")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = part.Write([]byte("fake image bytes"))
	_ = writer.Close()

	resp := performRequest(t, http.MethodPost, "/admin/images/upload", NewImageHandler(testhelpers.ImageFacadeStub{}).Upload, nil, buf.Bytes(), map[string]string{"Content-Type": writer.FormDataContentType()})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
	var out dto.ImageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil || out.Name != "cover.jpg" {
		t.Fatalf("unexpected body %q (%v)", resp.Body.String(), err)
	}
}

func TestImageHandlerUploadCollision(t *testing.T) {
	handler := NewImageHandler(testhelpers.ImageFacadeStub{SaveFn: func(name string, src io.Reader) (*model.ImageFile, error) {
		return nil, domainErrors.ErrAlreadyExists
	}})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("image", "cover.jpg")
	_, _ = part.Write([]byte("x"))
	_ = writer.Close()

	resp := performRequest(t, http.MethodPost, "/admin/images/upload", handler.Upload, nil, buf.Bytes(), map[string]string{"Content-Type": writer.FormDataContentType()})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.Code)
	}
}

func TestImageHandlerRenameMissing(t *testing.T) {
	handler := NewImageHandler(testhelpers.ImageFacadeStub{RenameFn: func(oldName, newName string) error {
		return domainErrors.ErrNotFound
	}})
	body, _ := json.Marshal(dto.ImageRenameRequest{OldName: "missing.jpg", NewName: "new.jpg"})
	resp := performRequest(t, http.MethodPut, "/admin/images/rename", handler.Rename, nil, body, jsonHeaders)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestImageHandlerDeleteRequiresName(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/admin/images/delete", NewImageHandler(testhelpers.ImageFacadeStub{}).Delete, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
