package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EpicMandM/booking-admin-panel/internal/models"
)

// ErrAPIFailure is returned when the booking API answers with success=false.
var ErrAPIFailure = errors.New("booking API reported failure")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("booking API returned status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("booking API returned status %d", e.Code)
}

// BookingAPIClient talks to the admin booking endpoints.
type BookingAPIClient struct {
	baseURL string
	client  *http.Client
}

// NewBookingAPIClient creates a client for baseURL. A zero timeout leaves
// requests unbounded except for their context.
func NewBookingAPIClient(baseURL string, timeout time.Duration) *BookingAPIClient {
	return NewBookingAPIClientWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewBookingAPIClientWithHTTPClient creates a client with a caller-supplied http.Client.
func NewBookingAPIClientWithHTTPClient(baseURL string, httpClient *http.Client) *BookingAPIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &BookingAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

// ListBookings fetches bookings on date, or all upcoming bookings when date is empty.
func (c *BookingAPIClient) ListBookings(ctx context.Context, date string) (bookings []models.Booking, err error) {
	endpoint := c.baseURL + "/api/admin/bookings"
	if date != "" {
		endpoint += "?" + url.Values{"date": {date}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	// Bookings is a pointer so a payload without the field stays distinguishable
	// from an empty list.
	var payload struct {
		models.ListBookingsResponse
		Bookings *[]models.Booking `json:"bookings"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Message: payload.Error}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("failed to decode bookings response: %w", decodeErr)
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: %s", ErrAPIFailure, payload.Error)
	}
	if payload.Bookings == nil {
		return nil, fmt.Errorf("bookings response has no bookings field")
	}
	return *payload.Bookings, nil
}

// CancelBooking marks a booking as cancelled.
func (c *BookingAPIClient) CancelBooking(ctx context.Context, id models.BookingID) error {
	return c.postAction(ctx, id, "cancel")
}

// DeleteBooking removes a booking permanently.
func (c *BookingAPIClient) DeleteBooking(ctx context.Context, id models.BookingID) error {
	return c.postAction(ctx, id, "delete")
}

// postAction sends a body-less POST. The response body is drained but not parsed.
func (c *BookingAPIClient) postAction(ctx context.Context, id models.BookingID, action string) (err error) {
	if id == "" {
		return fmt.Errorf("booking id is required")
	}
	endpoint := fmt.Sprintf("%s/api/admin/bookings/%s/%s", c.baseURL, url.PathEscape(id.String()), action)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", action, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to %s booking %s: %w", action, id, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
