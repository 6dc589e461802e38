// Package client talks to the external booking backend. The backend owns
// persistence and the exact wire contract; everything here stays at the
// boundary types in models.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"smartslot/models"
)

// ErrUnreachable wraps transport failures: the request never produced a
// response. Callers report these as "unable to connect".
var ErrUnreachable = fmt.Errorf("unable to connect to booking backend")

// StatusError is a backend response with a non-2xx status code.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.Code, e.Body)
}

// BackendClient is the HTTP client of the booking backend.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient builds a client for the given base URL. A zero timeout
// means unbounded waiting.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCreatedDates returns every date the backend has persisted.
func (c *BackendClient) FetchCreatedDates(ctx context.Context) ([]models.CreatedDate, error) {
	var payload struct {
		Dates []models.CreatedDate `json:"dates"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/available-dates", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Dates, nil
}

// FetchBookings returns the backend's bookings grouped by date.
func (c *BackendClient) FetchBookings(ctx context.Context) (models.BookingsSummary, error) {
	var summary models.BookingsSummary
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &summary); err != nil {
		return models.BookingsSummary{}, err
	}
	return summary, nil
}

// CreateDates submits a bulk date-creation request.
func (c *BackendClient) CreateDates(ctx context.Context, req models.BulkCreateRequest) (models.BulkCreateResponse, error) {
	var resp models.BulkCreateResponse
	if err := c.do(ctx, http.MethodPost, "/api/available-dates/bulk", req, &resp); err != nil {
		return models.BulkCreateResponse{}, err
	}
	return resp, nil
}

// DeleteDate deletes a created date by its backend id. The backend refuses
// when bookings exist for the date and explains why in the response.
func (c *BackendClient) DeleteDate(ctx context.Context, id string) (models.DeleteResponse, error) {
	var resp models.DeleteResponse
	path := "/api/available-dates/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &resp); err != nil {
		return models.DeleteResponse{}, err
	}
	return resp, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}
