package handler

import (
	"context"
	"sync"

	"github.com/EpicMandM/booking-admin-panel/internal/view"
)

type confirmKey struct{}

type resubmitKey struct{}

// WithConfirmAnswer attaches the admin's answer to a pending confirmation.
func WithConfirmAnswer(ctx context.Context, yes bool) context.Context {
	return context.WithValue(ctx, confirmKey{}, yes)
}

// WithResubmitPath records the form path that repeats the current action.
func WithResubmitPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, resubmitKey{}, path)
}

func confirmAnswer(ctx context.Context) (yes, ok bool) {
	yes, ok = ctx.Value(confirmKey{}).(bool)
	return yes, ok
}

func resubmitPath(ctx context.Context) string {
	path, _ := ctx.Value(resubmitKey{}).(string)
	return path
}

// WebPlatform answers panel confirmations and alerts with page modals. A
// confirmation without an answer on the context opens a modal and declines,
// so the action runs only once the admin resubmits it with confirm=yes.
type WebPlatform struct {
	mu    sync.Mutex
	modal *view.Modal
}

func NewWebPlatform() *WebPlatform {
	return &WebPlatform{}
}

func (p *WebPlatform) Confirm(ctx context.Context, message string) bool {
	if yes, ok := confirmAnswer(ctx); ok {
		return yes
	}
	path := resubmitPath(ctx)
	if path == "" {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal = &view.Modal{Kind: view.ModalConfirm, Text: message, Action: path}
	return false
}

func (p *WebPlatform) Alert(_ context.Context, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal = &view.Modal{Kind: view.ModalNotice, Text: message}
}

// Modal returns a copy of the open modal, or nil.
func (p *WebPlatform) Modal() *view.Modal {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.modal == nil {
		return nil
	}
	m := *p.modal
	return &m
}

func (p *WebPlatform) CloseModal() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.modal = nil
}
