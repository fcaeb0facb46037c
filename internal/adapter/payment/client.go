package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"
)

// ErrCaptureNotFound indicates the provider doesn't know the capture reference.
var ErrCaptureNotFound = errors.New("capture not found")

// CaptureStatus describes the provider-side state of a payment capture.
type CaptureStatus string

const (
	CaptureStatusCompleted CaptureStatus = "COMPLETED"
	CaptureStatusPending   CaptureStatus = "PENDING"
	CaptureStatusDeclined  CaptureStatus = "DECLINED"
)

// Confirmation is the provider's answer for one capture reference.
type Confirmation struct {
	Ref    string
	Status CaptureStatus
}

// Client exposes operations to confirm a payment capture with the provider.
type Client interface {
	FetchCapture(ctx context.Context, ref string) (*Confirmation, error)
}

// HTTPClient implements Client via the provider's REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// response mirrors the JSON payload of a capture lookup.
type response struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// NewHTTPClient creates HTTP provider client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment provider url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// FetchCapture queries the provider for the capture's current status.
func (c *HTTPClient) FetchCapture(ctx context.Context, ref string) (*Confirmation, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v2/payments/captures/", url.PathEscape(ref))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data response
		if err := json.Unmarshal(body, &data); err != nil {
			return nil, err
		}
		return &Confirmation{Ref: data.ID, Status: CaptureStatus(data.Status)}, nil
	case http.StatusNotFound:
		return nil, ErrCaptureNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("capture lookup failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("payment provider error: %s", resp.Status)
	}
}

// TrustingClient accepts every capture without contacting a provider.
// It preserves the historical behavior of deployments that rely on the
// client-side payment SDK callback alone.
type TrustingClient struct{}

// FetchCapture reports the capture as completed unconditionally.
func (TrustingClient) FetchCapture(_ context.Context, ref string) (*Confirmation, error) {
	return &Confirmation{Ref: ref, Status: CaptureStatusCompleted}, nil
}
