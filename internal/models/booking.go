package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// BookingID identifies a booking. The API sends it either as a JSON string or a
// JSON number; both decode to the same textual form.
type BookingID string

func (id BookingID) String() string { return string(id) }

// UnmarshalJSON accepts "7" and 7 alike.
func (id *BookingID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("booking id: %w", err)
		}
		*id = BookingID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("booking id must be a string or number: %w", err)
	}
	*id = BookingID(n.String())
	return nil
}

// Booking is a read-only copy of a reservation owned by the booking API.
type Booking struct {
	ID         BookingID `json:"id"`
	UserID     *int64    `json:"user_id,omitempty"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Guests     int       `json:"guests"`
	Duration   float64   `json:"duration"`
	TotalPrice *float64  `json:"total_price,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  string    `json:"created_at,omitempty"`
}

// DurationText renders the duration in hours without trailing zeros.
func (b Booking) DurationText() string {
	return strconv.FormatFloat(b.Duration, 'f', -1, 64)
}

// ListBookingsResponse is the payload of GET /api/admin/bookings.
type ListBookingsResponse struct {
	Success  bool      `json:"success"`
	Bookings []Booking `json:"bookings,omitempty"`
	Error    string    `json:"error,omitempty"`
}

