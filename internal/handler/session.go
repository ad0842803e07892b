package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/EpicMandM/booking-admin-panel/internal/panel"
	"github.com/EpicMandM/booking-admin-panel/internal/view"
	"github.com/google/uuid"
)

const sessionCookie = "admin_panel_session"

// session is one browser's panel: its document, modal state and controller.
type session struct {
	id       string
	doc      *view.Document
	platform *WebPlatform
	panel    *panel.AdminBookingPanel
	lastSeen time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	idle     time.Duration
	now      func() time.Time
	newPanel func(doc *view.Document, platform *WebPlatform) *panel.AdminBookingPanel
}

func newSessionStore(idle time.Duration, newPanel func(*view.Document, *WebPlatform) *panel.AdminBookingPanel) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		idle:     idle,
		now:      time.Now,
		newPanel: newPanel,
	}
}

// lookup returns the live session for id, dropping every expired one first.
func (s *sessionStore) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = now
	}
	return sess, ok
}

func (s *sessionStore) create() *session {
	doc := view.NewDocument()
	platform := NewWebPlatform()
	sess := &session{
		id:       uuid.NewString(),
		doc:      doc,
		platform: platform,
		panel:    s.newPanel(doc, platform),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	sess.lastSeen = now
	s.sessions[sess.id] = sess
	return sess
}

func (s *sessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.idle {
			delete(s.sessions, id)
		}
	}
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
