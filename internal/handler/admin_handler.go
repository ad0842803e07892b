package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/EpicMandM/booking-admin-panel/internal/logger"
	"github.com/EpicMandM/booking-admin-panel/internal/models"
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
	"github.com/EpicMandM/booking-admin-panel/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	// ServiceName is reported by the health endpoint.
	ServiceName = "booking-admin-panel"

	basePath  = view.DefaultBasePath
	panelPath = basePath + "/panel"
)

// Options configures an AdminHandler.
type Options struct {
	Messages           panel.Messages
	Notifier           panel.Notifier
	Logger             *logger.Logger
	SessionIdleTimeout time.Duration
}

// AdminHandler serves the admin panel to browsers. Every browser session gets
// its own document and panel controller; form posts drive the panel and
// redirect back to the rendered page.
type AdminHandler struct {
	api      panel.BookingAPI
	messages panel.Messages
	notifier panel.Notifier
	logger   *logger.Logger
	sessions *sessionStore
	now      func() time.Time
}

func NewAdminHandler(api panel.BookingAPI, opts Options) *AdminHandler {
	h := &AdminHandler{
		api:      api,
		messages: opts.Messages.WithDefaults(),
		notifier: opts.Notifier,
		logger:   opts.Logger,
		now:      time.Now,
	}
	if h.logger == nil {
		h.logger = logger.Discard()
	}
	idle := opts.SessionIdleTimeout
	if idle <= 0 {
		idle = 30 * time.Minute
	}
	h.sessions = newSessionStore(idle, h.newPanel)
	return h
}

func (h *AdminHandler) newPanel(doc *view.Document, platform *WebPlatform) *panel.AdminBookingPanel {
	opts := []panel.Option{panel.WithMessages(h.messages), panel.WithLogger(h.logger)}
	if h.notifier != nil {
		opts = append(opts, panel.WithNotifier(h.notifier))
	}
	return panel.New(h.api, doc, platform, opts...)
}

// Routes returns the router for the panel and health endpoints.
func (h *AdminHandler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, basePath, http.StatusFound)
	})
	r.Get("/health", h.Health)

	r.Route(basePath, func(r chi.Router) {
		r.Get("/", h.Open)
		r.Get("/panel", h.Page)
		r.Get("/filter", h.ApplyFilter)
		r.Post("/filter/clear", h.ClearFilter)
		r.Post("/bookings/{id}/{action}", h.BookingAction)
		r.Post("/modal/close", h.CloseModal)
		r.Post("/close", h.ClosePanel)
	})
	return r
}

// Health handles GET /health
func (h *AdminHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"timestamp": h.now().Format(time.RFC3339),
		"service":   ServiceName,
	}); err != nil {
		h.logger.Error("Failed to encode health response", logger.Error(err))
	}
}

// Open handles GET /admin: mounts the panel if needed and loads all upcoming bookings.
func (h *AdminHandler) Open(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.session(w, r)
	sess.platform.CloseModal()
	sess.panel.Initialize(r.Context())
	h.render(w, sess, http.StatusOK, "")
}

// Page handles GET /admin/panel: renders the current state without loading.
func (h *AdminHandler) Page(w http.ResponseWriter, r *http.Request) {
	sess, created := h.session(w, r)
	if created {
		http.Redirect(w, r, basePath, http.StatusSeeOther)
		return
	}
	h.render(w, sess, http.StatusOK, "")
}

// ApplyFilter handles GET /admin/filter?date=YYYY-MM-DD
func (h *AdminHandler) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.session(w, r)
	sess.platform.CloseModal()
	if err := sess.doc.Apply(r.Context(), r.URL.Query().Get("date")); err != nil {
		h.redirectToOpen(w, r, sess, err)
		return
	}
	h.render(w, sess, http.StatusOK, "")
}

// ClearFilter handles POST /admin/filter/clear
func (h *AdminHandler) ClearFilter(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.session(w, r)
	sess.platform.CloseModal()
	if err := sess.doc.Clear(r.Context()); err != nil {
		h.redirectToOpen(w, r, sess, err)
		return
	}
	http.Redirect(w, r, panelPath, http.StatusSeeOther)
}

// BookingAction handles POST /admin/bookings/{id}/{action} with an optional
// confirm=yes|no form field answering the confirmation modal.
func (h *AdminHandler) BookingAction(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.session(w, r)
	sess.platform.CloseModal()

	// chi matches on RawPath when the request has one, leaving params escaped.
	id := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(id)
		if err != nil {
			h.render(w, sess, http.StatusBadRequest, h.messages.StaleControl)
			return
		}
		id = unescaped
	}
	action := panel.Action(chi.URLParam(r, "action"))

	ctx := WithResubmitPath(r.Context(), r.URL.EscapedPath())
	switch r.PostFormValue("confirm") {
	case "yes":
		ctx = WithConfirmAnswer(ctx, true)
	case "no":
		ctx = WithConfirmAnswer(ctx, false)
	}

	err := sess.doc.Click(ctx, action, models.BookingID(id))
	switch {
	case errors.Is(err, view.ErrNotMounted):
		h.redirectToOpen(w, r, sess, err)
	case errors.Is(err, view.ErrNoSuchControl):
		h.logger.Warn("Booking control not found",
			logger.Session(sess.id),
			logger.Action(string(action)),
			logger.Booking(id),
			logger.Reason("stale_page"))
		h.render(w, sess, http.StatusNotFound, h.messages.StaleControl)
	default:
		http.Redirect(w, r, panelPath, http.StatusSeeOther)
	}
}

// CloseModal handles POST /admin/modal/close
func (h *AdminHandler) CloseModal(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.session(w, r)
	sess.platform.CloseModal()
	http.Redirect(w, r, panelPath, http.StatusSeeOther)
}

// ClosePanel handles POST /admin/close
func (h *AdminHandler) ClosePanel(w http.ResponseWriter, r *http.Request) {
	sess, _ := h.session(w, r)
	sess.platform.CloseModal()
	sess.panel.Remove()
	http.Redirect(w, r, panelPath, http.StatusSeeOther)
}

// session returns the caller's session, starting a new one when the cookie is
// missing, unknown or expired.
func (h *AdminHandler) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := h.sessions.lookup(c.Value); ok {
			return sess, false
		}
	}
	sess := h.sessions.create()
	setSessionCookie(w, sess.id)
	h.logger.Info("Admin session started", logger.Session(sess.id), logger.Status("created"))
	return sess, true
}

func (h *AdminHandler) redirectToOpen(w http.ResponseWriter, r *http.Request, sess *session, err error) {
	h.logger.Debug("Panel not mounted, reopening", logger.Session(sess.id), logger.Path(r.URL.Path), logger.Reason(err.Error()))
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *AdminHandler) render(w http.ResponseWriter, sess *session, status int, notice string) {
	var buf bytes.Buffer
	if err := sess.doc.Render(&buf, view.Overlay{
		BasePath: basePath,
		Modal:    sess.platform.Modal(),
		Notice:   notice,
	}); err != nil {
		h.logger.Error("Failed to render admin panel", logger.Session(sess.id), logger.Error(err))
		http.Error(w, "Failed to render admin panel", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("Failed to write admin panel", logger.Session(sess.id), logger.Error(err))
	}
}
