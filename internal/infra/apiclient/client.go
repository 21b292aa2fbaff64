// Package apiclient is the beacon agent's HTTP client for the pushcart API.
// It implements publisher.LocationStore so the publisher loop stays unaware
// of whether it is writing to the database directly or through the API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"pushcart/internal/domain/entity"
	"pushcart/internal/publisher"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultRequestTimeout = 10 * time.Second

// Client talks to the vendor location endpoints with a bearer token.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

var _ publisher.LocationStore = (*Client)(nil)

// New creates a client for the API at baseURL authenticated as the vendor
// owning accessToken.
func New(baseURL, accessToken string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("api base url must be provided")
	}
	if accessToken == "" {
		return nil, errors.New("access token must be provided")
	}

	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

type publishLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpsertLocation publishes a fresh position via PUT /api/vendor/location.
// The vendor identity comes from the bearer token, not the argument.
func (c *Client) UpsertLocation(ctx context.Context, location *entity.VendorLocation) error {
	payload := publishLocationRequest{
		Latitude:  location.Position.Latitude,
		Longitude: location.Position.Longitude,
	}

	return c.do(ctx, http.MethodPut, "/api/vendor/location", payload)
}

// MarkInactive flips the vendor offline via POST /api/vendor/location/offline.
func (c *Client) MarkInactive(ctx context.Context, _ uuid.UUID) error {
	return c.do(ctx, http.MethodPost, "/api/vendor/location/offline", nil)
}

func (c *Client) do(ctx context.Context, method, path string, payload any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call pushcart api")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		// Keep a short excerpt of the body for the log line.
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("pushcart api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	return nil
}
