package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/vango-dev/headless/pkg/layout"
	"github.com/vango-dev/headless/pkg/router"
	"github.com/vango-dev/headless/pkg/vdom"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "headless_sid"

// Session is one visitor's tab layout and location. The location plays the
// role of the browser URL for the controller: the controller reads it as its
// endpoint and its navigations write it.
type Session struct {
	ID string

	controller *layout.Controller[*vdom.VNode]

	// dispatch serializes requests of one session, so a sync, an action and
	// the render that follows observe the same location.
	dispatch sync.Mutex

	mu         sync.Mutex
	location   string
	lastActive time.Time
}

// Controller returns the session's layout controller.
func (s *Session) Controller() *layout.Controller[*vdom.VNode] {
	return s.controller
}

// Location returns the session's current path.
func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

func (s *Session) setLocation(path string) {
	s.mu.Lock()
	s.location = path
	s.mu.Unlock()
}

// navigate is the innermost navigate callback of the session's controller.
func (s *Session) navigate(_ context.Context, nav router.Navigation) {
	s.setLocation(nav.Path)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastActive = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// sessionFactory builds a session whose controller is bound to it.
type sessionFactory func(id string) (*Session, error)

// sessionManager holds sessions by id and drops idle ones.
type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	factory         sessionFactory
	idleTimeout     time.Duration
	cleanupInterval time.Duration
	now             func() time.Time

	active prometheus.Gauge
	logger zerolog.Logger

	done        chan struct{}
	cleanupDone chan struct{}
	closeOnce   sync.Once
}

func newSessionManager(factory sessionFactory, idle, interval time.Duration, active prometheus.Gauge, logger zerolog.Logger) *sessionManager {
	return &sessionManager{
		sessions:        make(map[string]*Session),
		factory:         factory,
		idleTimeout:     idle,
		cleanupInterval: interval,
		now:             time.Now,
		active:          active,
		logger:          logger.With().Str("component", "session_manager").Logger(),
		done:            make(chan struct{}),
		cleanupDone:     make(chan struct{}),
	}
}

// start runs the cleanup loop until shutdown.
func (sm *sessionManager) start() {
	go sm.cleanupLoop()
}

// Get returns the session with id and marks it active.
func (sm *sessionManager) Get(id string) *Session {
	sm.mu.RLock()
	s := sm.sessions[id]
	sm.mu.RUnlock()
	if s != nil {
		s.touch(sm.now())
	}
	return s
}

// Create registers a new session under a fresh id.
func (sm *sessionManager) Create() (*Session, error) {
	s, err := sm.factory(uuid.NewString())
	if err != nil {
		return nil, err
	}
	s.touch(sm.now())

	sm.mu.Lock()
	sm.sessions[s.ID] = s
	sm.mu.Unlock()
	sm.active.Inc()
	sm.logger.Debug().Str("session", s.ID).Msg("session created")
	return s, nil
}

// Count returns the number of live sessions.
func (sm *sessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

func (sm *sessionManager) cleanupLoop() {
	defer close(sm.cleanupDone)
	ticker := time.NewTicker(sm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sm.cleanupExpired()
		case <-sm.done:
			return
		}
	}
}

// cleanupExpired removes sessions that have exceeded the idle timeout.
func (sm *sessionManager) cleanupExpired() int {
	now := sm.now()

	sm.mu.Lock()
	var expired []string
	for id, s := range sm.sessions {
		if now.Sub(s.idleSince()) > sm.idleTimeout {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		delete(sm.sessions, id)
	}
	remaining := len(sm.sessions)
	sm.mu.Unlock()

	if len(expired) > 0 {
		sm.active.Sub(float64(len(expired)))
		sm.logger.Info().
			Int("count", len(expired)).
			Int("remaining", remaining).
			Msg("cleaned up expired sessions")
	}
	return len(expired)
}

// Shutdown stops the cleanup loop and drops every session.
func (sm *sessionManager) Shutdown() {
	sm.closeOnce.Do(func() {
		close(sm.done)
	})

	sm.mu.Lock()
	n := len(sm.sessions)
	sm.sessions = make(map[string]*Session)
	sm.mu.Unlock()
	sm.active.Sub(float64(n))
}

// wait blocks until the cleanup loop has exited. Only valid after start.
func (sm *sessionManager) wait() {
	<-sm.cleanupDone
}

// sessionCookie builds the cookie for a new session.
func sessionCookie(id string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
