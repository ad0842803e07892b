package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/EpicMandM/booking-admin-panel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- ListBookings ---

func TestBookingAPIClient_ListBookings_NoFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/bookings", r.URL.Path)
		_, hasDate := r.URL.Query()["date"]
		assert.False(t, hasDate, "date must be absent without a filter")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"bookings":[
			{"id":7,"name":"Ann","phone":"555","date":"2024-05-01","time":"18:00","guests":2,"duration":1,"status":"active"}
		]}`))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	bookings, err := client.ListBookings(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.BookingID("7"), bookings[0].ID)
	assert.Equal(t, "Ann", bookings[0].Name)
}

func TestBookingAPIClient_ListBookings_WithFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))
		assert.Equal(t, "date=2024-05-01", r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"success":true,"bookings":[]}`))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL+"/", srv.Client())
	bookings, err := client.ListBookings(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
}

func TestBookingAPIClient_ListBookings_ApplicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"database is locked"}`))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	_, err := client.ListBookings(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAPIFailure))
	assert.Contains(t, err.Error(), "database is locked")
}

func TestBookingAPIClient_ListBookings_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	_, err := client.ListBookings(context.Background(), "")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, err.Error(), "status 500: boom")
}

func TestBookingAPIClient_ListBookings_HTTPErrorNonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	_, err := client.ListBookings(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "booking API returned status 502", err.Error())
}

func TestBookingAPIClient_ListBookings_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	_, err := client.ListBookings(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestBookingAPIClient_ListBookings_MissingBookingsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	_, err := client.ListBookings(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bookings field")
}

func TestBookingAPIClient_ListBookings_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewBookingAPIClient(url, 0)
	_, err := client.ListBookings(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send request")
}

func TestBookingAPIClient_ListBookings_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	_, err := client.ListBookings(ctx, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

// --- CancelBooking / DeleteBooking ---

func TestBookingAPIClient_Mutations(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c *BookingAPIClient, id models.BookingID) error
		wantPath string
	}{
		{
			name:     "cancel",
			call:     func(c *BookingAPIClient, id models.BookingID) error { return c.CancelBooking(context.Background(), id) },
			wantPath: "/api/admin/bookings/7/cancel",
		},
		{
			name:     "delete",
			call:     func(c *BookingAPIClient, id models.BookingID) error { return c.DeleteBooking(context.Background(), id) },
			wantPath: "/api/admin/bookings/7/delete",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hits int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, int64(0), r.ContentLength, "no request body")
				_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
			}))
			defer srv.Close()

			client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
			require.NoError(t, tt.call(client, "7"))
			assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
		})
	}
}

func TestBookingAPIClient_CancelBooking_BodyNotInspected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"already cancelled"}`))
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	assert.NoError(t, client.CancelBooking(context.Background(), "7"))
}

func TestBookingAPIClient_DeleteBooking_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	err := client.DeleteBooking(context.Background(), "99")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestBookingAPIClient_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/bookings/a%2Fb/cancel", r.URL.EscapedPath())
	}))
	defer srv.Close()

	client := NewBookingAPIClientWithHTTPClient(srv.URL, srv.Client())
	require.NoError(t, client.CancelBooking(context.Background(), "a/b"))
}

func TestBookingAPIClient_EmptyID(t *testing.T) {
	client := NewBookingAPIClient("http://unused.invalid", 0)
	err := client.DeleteBooking(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking id is required")
}

func TestNewBookingAPIClient_Timeout(t *testing.T) {
	client := NewBookingAPIClient("http://bookings.local/", 3*time.Second)
	assert.Equal(t, "http://bookings.local", client.baseURL)
	assert.Equal(t, 3*time.Second, client.client.Timeout)
}

func TestNewBookingAPIClientWithHTTPClient_NilUsesDefault(t *testing.T) {
	client := NewBookingAPIClientWithHTTPClient("http://bookings.local", nil)
	assert.Same(t, http.DefaultClient, client.client)
}
