package view

import (
	"context"
	"errors"
	"sync"

	"github.com/EpicMandM/booking-admin-panel/internal/models"
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
)

var (
	// ErrNotMounted is returned for events sent to a document with no panel.
	ErrNotMounted = errors.New("admin panel is not mounted")
	// ErrNoSuchControl is returned when no rendered row carries the control.
	ErrNoSuchControl = errors.New("no such control")
)

// Document is the in-memory page the panel draws into. It implements
// panel.View and forwards host events to the bound handlers.
type Document struct {
	mu          sync.Mutex
	mounted     bool
	layout      panel.Layout
	filterValue string
	status      string
	rows        []panel.Row
}

// NewDocument returns an empty document with no panel mounted.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) Mounted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mounted
}

// Mount inserts the panel chrome with an empty filter and the loading text.
func (d *Document) Mount(layout panel.Layout) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mounted = true
	d.layout = layout
	d.filterValue = ""
	d.status = layout.Messages.Loading
	d.rows = nil
}

// Unmount removes the panel. The layout texts are kept for the closed page.
func (d *Document) Unmount() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mounted = false
	d.layout.OnApply = nil
	d.layout.OnClear = nil
	d.filterValue = ""
	d.status = ""
	d.rows = nil
}

func (d *Document) SetFilterValue(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filterValue = value
}

// FilterValue returns the date shown in the filter input.
func (d *Document) FilterValue() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filterValue
}

func (d *Document) ShowStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = text
	d.rows = nil
}

func (d *Document) ShowRows(rows []panel.Row) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.status = ""
	d.rows = append([]panel.Row(nil), rows...)
}

// Status returns the list indicator text, empty while rows are shown.
func (d *Document) Status() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// Bookings returns the bookings of the rendered rows in order.
func (d *Document) Bookings() []models.Booking {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.Booking, 0, len(d.rows))
	for _, r := range d.rows {
		out = append(out, r.Booking)
	}
	return out
}

// Apply sets the filter input to date and fires the change handler. An empty
// date fires the clear handler, like a cleared date input.
func (d *Document) Apply(ctx context.Context, date string) error {
	d.mu.Lock()
	if !d.mounted {
		d.mu.Unlock()
		return ErrNotMounted
	}
	d.filterValue = date
	onApply, onClear := d.layout.OnApply, d.layout.OnClear
	d.mu.Unlock()

	if date == "" {
		if onClear != nil {
			onClear(ctx)
		}
		return nil
	}
	if onApply != nil {
		onApply(ctx, date)
	}
	return nil
}

// Clear presses the clear button.
func (d *Document) Clear(ctx context.Context) error {
	d.mu.Lock()
	if !d.mounted {
		d.mu.Unlock()
		return ErrNotMounted
	}
	onClear := d.layout.OnClear
	d.mu.Unlock()

	if onClear != nil {
		onClear(ctx)
	}
	return nil
}

// Click presses the action button of the first row showing booking id.
func (d *Document) Click(ctx context.Context, action panel.Action, id models.BookingID) error {
	d.mu.Lock()
	if !d.mounted {
		d.mu.Unlock()
		return ErrNotMounted
	}
	handler := d.controlLocked(action, id)
	d.mu.Unlock()

	if handler == nil {
		return ErrNoSuchControl
	}
	handler(ctx)
	return nil
}

// controlLocked returns the handler of the first row showing id, or nil.
func (d *Document) controlLocked(action panel.Action, id models.BookingID) func(context.Context) {
	for _, r := range d.rows {
		if r.Booking.ID != id {
			continue
		}
		switch action {
		case panel.ActionHide:
			return r.OnHide
		case panel.ActionDelete:
			return r.OnDelete
		case panel.ActionEdit:
			return r.OnEdit
		}
		return nil
	}
	return nil
}

var _ panel.View = (*Document)(nil)
