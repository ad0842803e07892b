package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/EpicMandM/booking-admin-panel/internal/config"
	"github.com/EpicMandM/booking-admin-panel/internal/handler"
	"github.com/EpicMandM/booking-admin-panel/internal/logger"
	"github.com/EpicMandM/booking-admin-panel/internal/panel"
	"github.com/EpicMandM/booking-admin-panel/internal/service"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config   *config.Config
	features *service.FeatureConfig
	logger   *logger.Logger

	api      *service.BookingAPIClient
	notifier panel.Notifier
	handler  *handler.AdminHandler

	newNotifier func(token string, chatID int64) (panel.Notifier, error)
}

func New(cfg *config.Config, features *service.FeatureConfig, log *logger.Logger) *App {
	if features == nil {
		features = service.DefaultFeatureConfig()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &App{
		config:   cfg,
		features: features,
		logger:   log,
		newNotifier: func(token string, chatID int64) (panel.Notifier, error) {
			return service.NewTelegramNotifier(token, chatID)
		},
	}
}

// Initialize builds the booking API client, the optional Telegram notifier and
// the HTTP handler. A notifier that cannot start is logged and skipped.
func (a *App) Initialize(ctx context.Context) error {
	if a.config == nil {
		return fmt.Errorf("config is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	a.api = service.NewBookingAPIClient(a.config.BookingAPIURL, a.config.BookingAPITimeout)
	a.logger.Info("Booking API client ready", logger.Status("ready"), logger.F("URL", a.config.BookingAPIURL))

	switch {
	case !a.features.Telegram.Enabled:
		a.logger.Info("Telegram notices disabled by feature config", logger.Status("disabled"))
	case !a.config.TelegramEnabled():
		a.logger.Info("Telegram notices not configured (TELEGRAM_BOT_TOKEN/TELEGRAM_ADMIN_CHAT_ID missing)")
	default:
		notifier, err := a.newNotifier(a.config.TelegramBotToken, a.config.TelegramAdminChatID)
		if err != nil {
			a.logger.Warn("Telegram notifier not available, notices will not be sent", logger.Error(err))
		} else {
			a.notifier = notifier
			a.logger.Info("Telegram notifier initialized", logger.Status("ready"))
		}
	}

	a.handler = handler.NewAdminHandler(a.api, handler.Options{
		Messages:           a.features.Panel,
		Notifier:           a.notifier,
		Logger:             a.logger,
		SessionIdleTimeout: a.config.SessionIdleTimeout,
	})
	return nil
}

// Handler returns the routes of an initialized app.
func (a *App) Handler() (http.Handler, error) {
	if a.handler == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a.handler.Routes(), nil
}

// Run listens on the configured address and serves until ctx is done.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.ListenAddr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	h, err := a.Handler()
	if err != nil {
		_ = ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	a.logger.Info("Admin panel listening", logger.Status("listening"), logger.F("ADDR", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	a.logger.Info("Admin panel stopped", logger.Status("stopped"))
	return nil
}
