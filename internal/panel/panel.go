package panel

import (
	"context"
	"sync"

	"github.com/EpicMandM/booking-admin-panel/internal/logger"
	"github.com/EpicMandM/booking-admin-panel/internal/models"
	"github.com/google/uuid"
)

// AdminBookingPanel renders the booking list for a date filter and wires the
// per-row hide, delete and edit actions back to the booking API.
type AdminBookingPanel struct {
	api      BookingAPI
	view     View
	platform Platform
	notifier Notifier
	messages Messages
	logger   *logger.Logger

	mu     sync.Mutex
	filter string
}

// Option customizes a panel.
type Option func(*AdminBookingPanel)

// WithMessages overrides the panel texts. Empty fields keep their defaults.
func WithMessages(m Messages) Option {
	return func(p *AdminBookingPanel) { p.messages = m.WithDefaults() }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(p *AdminBookingPanel) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithNotifier reports successful hide and delete actions.
func WithNotifier(n Notifier) Option {
	return func(p *AdminBookingPanel) { p.notifier = n }
}

// New creates a panel drawing into view and talking to api.
func New(api BookingAPI, view View, platform Platform, opts ...Option) *AdminBookingPanel {
	p := &AdminBookingPanel{
		api:      api,
		view:     view,
		platform: platform,
		messages: DefaultMessages(),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Messages returns the texts the panel renders with.
func (p *AdminBookingPanel) Messages() Messages {
	return p.messages
}

// Filter returns the date filter of the most recent load.
func (p *AdminBookingPanel) Filter() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// Initialize mounts the panel if it is absent, binds the filter controls and
// loads all upcoming bookings. Calling it on a mounted panel only reloads.
func (p *AdminBookingPanel) Initialize(ctx context.Context) {
	if !p.view.Mounted() {
		p.view.Mount(Layout{
			Messages: p.messages,
			OnApply: func(ctx context.Context, date string) {
				p.LoadBookings(ctx, date)
			},
			OnClear: func(ctx context.Context) {
				p.view.SetFilterValue("")
				p.LoadBookings(ctx, "")
			},
		})
		p.logger.Info("Admin panel mounted", logger.Action("initialize"), logger.Status("mounted"))
	}
	p.LoadBookings(ctx, "")
}

// Remove detaches the panel UI.
func (p *AdminBookingPanel) Remove() {
	p.view.Unmount()
	p.logger.Info("Admin panel removed", logger.Action("remove"))
}

// LoadBookings fetches bookings for dateFilter (all upcoming when empty) and
// renders them. Failures end in the load error indicator and are never returned.
// Overlapping loads are not ordered: whichever finishes last is what stays shown.
func (p *AdminBookingPanel) LoadBookings(ctx context.Context, dateFilter string) {
	if !p.view.Mounted() {
		p.logger.Warn("Load skipped, panel not mounted", logger.Action("load"), logger.Filter(dateFilter))
		return
	}

	p.mu.Lock()
	p.filter = dateFilter
	p.mu.Unlock()

	loadID := uuid.NewString()
	p.view.ShowStatus(p.messages.Loading)
	p.logger.Debug("Loading bookings", logger.Action("load"), logger.LoadID(loadID), logger.Filter(dateFilter))

	bookings, err := p.api.ListBookings(ctx, dateFilter)
	if err != nil {
		p.logger.Error("Failed to load bookings",
			logger.Action("load"),
			logger.LoadID(loadID),
			logger.Filter(dateFilter),
			logger.Error(err))
		p.view.ShowStatus(p.messages.LoadError)
		return
	}

	if len(bookings) == 0 {
		p.logger.Info("No bookings", logger.Action("load"), logger.LoadID(loadID), logger.Filter(dateFilter), logger.Count(0))
		p.view.ShowStatus(p.messages.Empty)
		return
	}

	rows := make([]Row, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, p.bindRow(b, dateFilter))
	}
	p.view.ShowRows(rows)
	p.logger.Info("Bookings loaded",
		logger.Action("load"),
		logger.LoadID(loadID),
		logger.Filter(dateFilter),
		logger.Count(len(rows)))
}

// bindRow attaches the row handlers. They reload with the filter this row was
// rendered under.
func (p *AdminBookingPanel) bindRow(b models.Booking, filter string) Row {
	id := b.ID
	return Row{
		Booking:  b,
		OnHide:   func(ctx context.Context) { p.hide(ctx, id, filter) },
		OnDelete: func(ctx context.Context) { p.delete(ctx, id, filter) },
		OnEdit:   func(ctx context.Context) { p.Edit(ctx, id) },
	}
}

// Hide asks for confirmation, marks the booking cancelled and reloads with the
// current filter.
func (p *AdminBookingPanel) Hide(ctx context.Context, id models.BookingID) {
	p.hide(ctx, id, p.Filter())
}

// Delete asks for confirmation, removes the booking for good and reloads with
// the current filter.
func (p *AdminBookingPanel) Delete(ctx context.Context, id models.BookingID) {
	p.delete(ctx, id, p.Filter())
}

// Edit is a placeholder: it only tells the admin editing is not available.
func (p *AdminBookingPanel) Edit(ctx context.Context, id models.BookingID) {
	p.logger.Info("Edit requested", logger.Action(string(ActionEdit)), logger.Booking(id.String()), logger.Status("not_implemented"))
	p.platform.Alert(ctx, p.messages.EditNotImplemented)
}

func (p *AdminBookingPanel) hide(ctx context.Context, id models.BookingID, filter string) {
	p.mutate(ctx, ActionHide, id, filter, p.messages.ConfirmHide, p.api.CancelBooking)
}

func (p *AdminBookingPanel) delete(ctx context.Context, id models.BookingID, filter string) {
	p.mutate(ctx, ActionDelete, id, filter, p.messages.ConfirmDelete, p.api.DeleteBooking)
}

func (p *AdminBookingPanel) mutate(
	ctx context.Context,
	action Action,
	id models.BookingID,
	filter, prompt string,
	call func(context.Context, models.BookingID) error,
) {
	if !p.platform.Confirm(ctx, prompt) {
		p.logger.Debug("Action not confirmed", logger.Action(string(action)), logger.Booking(id.String()))
		return
	}

	if err := call(ctx, id); err != nil {
		// The outcome is visible after the reload below.
		p.logger.Error("Booking action failed",
			logger.Action(string(action)),
			logger.Booking(id.String()),
			logger.Error(err))
	} else {
		p.logger.Info("Booking action completed", logger.Action(string(action)), logger.Booking(id.String()), logger.Status("success"))
		p.notify(ctx, action, id)
	}

	p.LoadBookings(ctx, filter)
}

func (p *AdminBookingPanel) notify(ctx context.Context, action Action, id models.BookingID) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.NotifyAction(ctx, action, id); err != nil {
		p.logger.Warn("Failed to send admin notice",
			logger.Action(string(action)),
			logger.Booking(id.String()),
			logger.Error(err))
	}
}
