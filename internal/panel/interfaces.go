package panel

import (
	"context"

	"github.com/EpicMandM/booking-admin-panel/internal/models"
)

// BookingAPI abstracts the booking service endpoints for testability.
type BookingAPI interface {
	ListBookings(ctx context.Context, date string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id models.BookingID) error
	DeleteBooking(ctx context.Context, id models.BookingID) error
}

// Platform is the host surface the panel runs inside (the Telegram web app in the
// browser, or the web host's modal dialogs). Confirm blocks until the admin answers.
type Platform interface {
	Confirm(ctx context.Context, message string) bool
	Alert(ctx context.Context, message string)
}

// Notifier reports completed admin actions somewhere outside the panel.
type Notifier interface {
	NotifyAction(ctx context.Context, action Action, id models.BookingID) error
}

// View is the rendering surface the panel draws into.
type View interface {
	Mounted() bool
	Mount(layout Layout)
	Unmount()
	SetFilterValue(value string)
	// ShowStatus replaces the list region with a single text indicator.
	ShowStatus(text string)
	// ShowRows replaces the list region with rows. Handlers bound to earlier rows
	// are dropped.
	ShowRows(rows []Row)
}

// Layout describes the panel chrome and the filter controls' handlers.
type Layout struct {
	Messages Messages
	OnApply  func(ctx context.Context, date string)
	OnClear  func(ctx context.Context)
}

// Row is one rendered booking with its bound action handlers.
type Row struct {
	Booking  models.Booking
	OnHide   func(ctx context.Context)
	OnDelete func(ctx context.Context)
	OnEdit   func(ctx context.Context)
}

// Action names a row control.
type Action string

const (
	ActionHide   Action = "hide"
	ActionDelete Action = "delete"
	ActionEdit   Action = "edit"
)
