// Package settings owns the theme preference and the login session of a
// profile. Both live in memory and are written through to the preferences
// table in the background; storage failures are logged and never surface to
// callers.
package settings

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/matheus3301/wave/internal/apperr"
	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/logging"
	"github.com/matheus3301/wave/internal/status"
	"github.com/matheus3301/wave/internal/store"
)

// KV is the durable key-value storage behind the store.
type KV interface {
	GetPreference(key string) (string, bool, error)
	SetPreference(key, value string) error
	DeletePreference(key string) error
}

// Session is the signed-in user. It never expires.
type Session struct {
	Identifier  string `json:"identifier"`
	DisplayName string `json:"display_name"`
	Token       string `json:"token"`
}

// ThemeChange is the payload of settings.theme_changed events.
type ThemeChange struct {
	From Theme
	To   Theme
}

type write struct {
	key, value string
	del        bool
	flushed    chan struct{}
}

// Store is safe for concurrent use. Persisted writes are applied in the order
// the in-memory mutations happened. Mutations never wait on storage: writes
// queue in memory and a single goroutine drains them.
type Store struct {
	kv          KV
	systemTheme func() Theme
	tokens      *TokenIssuer
	machine     *status.Machine
	bus         *bus.Bus
	log         *zap.Logger

	mu      sync.RWMutex
	theme   Theme
	session *Session
	closed  bool
	pending []write

	notify chan struct{}
	done   chan struct{}
}

// Options are the collaborators of a Store. KV and Tokens are required.
type Options struct {
	KV          KV
	SystemTheme func() Theme
	Tokens      *TokenIssuer
	Machine     *status.Machine
	Bus         *bus.Bus
	Logger      *zap.Logger
}

// New creates a store and starts its background writer. Call Close to stop it.
func New(opts Options) *Store {
	if opts.SystemTheme == nil {
		opts.SystemTheme = SystemTheme("")
	}
	s := &Store{
		kv:          opts.KV,
		systemTheme: opts.SystemTheme,
		tokens:      opts.Tokens,
		machine:     opts.Machine,
		bus:         opts.Bus,
		log:         logging.OrNop(opts.Logger),
		theme:       Light,
		notify:      make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
	go s.writer()
	return s
}

// Load reads the persisted theme and session. A missing or unreadable theme
// falls back to the environment preference.
func (s *Store) Load() Theme {
	theme := s.loadTheme()
	sess := s.loadSession()

	s.mu.Lock()
	s.theme = theme
	s.session = sess
	s.mu.Unlock()

	if sess != nil {
		s.transition(status.Authenticated)
	} else {
		s.transition(status.Unauthenticated)
	}
	s.log.Info("settings loaded", zap.String("theme", string(theme)), zap.Bool("authenticated", sess != nil))
	return theme
}

func (s *Store) loadTheme() Theme {
	raw, ok, err := s.kv.GetPreference(store.KeyTheme)
	if err != nil {
		s.log.Warn("read theme preference", zap.String("key", store.KeyTheme), zap.Error(apperr.Persistence("read theme", err)))
		return s.systemTheme()
	}
	if !ok {
		return s.systemTheme()
	}
	t, valid := ParseTheme(raw)
	if !valid {
		s.log.Warn("ignoring stored theme", zap.String("key", store.KeyTheme), zap.String("value", raw))
		return s.systemTheme()
	}
	return t
}

func (s *Store) loadSession() *Session {
	token, ok, err := s.kv.GetPreference(store.KeySession)
	if err != nil {
		s.log.Warn("read session", zap.String("key", store.KeySession), zap.Error(apperr.Persistence("read session", err)))
		return nil
	}
	if !ok {
		return nil
	}
	id, err := s.tokens.Verify(token)
	if err != nil {
		s.log.Warn("discarding stored session", zap.String("key", store.KeySession), zap.Error(err))
		s.mu.Lock()
		s.push(write{key: store.KeySession, del: true})
		s.mu.Unlock()
		return nil
	}
	return &Session{Identifier: id, DisplayName: id, Token: token}
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// SetTheme makes t active immediately and persists it in the background.
func (s *Store) SetTheme(t Theme) {
	s.mu.Lock()
	from := s.theme
	s.theme = t
	s.enqueue(store.KeyTheme, string(t))
	s.mu.Unlock()

	if from != t {
		s.bus.Publish(bus.NewEvent(bus.KindThemeChanged, ThemeChange{From: from, To: t}))
	}
}

// ToggleTheme switches to the opposite theme and returns it.
func (s *Store) ToggleTheme() Theme {
	s.mu.Lock()
	from := s.theme
	to := from.Opposite()
	s.theme = to
	s.enqueue(store.KeyTheme, string(to))
	s.mu.Unlock()

	s.bus.Publish(bus.NewEvent(bus.KindThemeChanged, ThemeChange{From: from, To: to}))
	return to
}

// Login creates a session for identifier. Logging in again replaces the
// current session.
func (s *Store) Login(identifier string) (Session, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return Session{}, apperr.Validation("identifier is required")
	}
	token, err := s.tokens.Issue(identifier)
	if err != nil {
		return Session{}, apperr.Wrap(apperr.CodeInternal, "issue session token", err)
	}
	sess := Session{Identifier: identifier, DisplayName: identifier, Token: token}

	s.mu.Lock()
	s.session = &sess
	s.enqueue(store.KeySession, token)
	s.mu.Unlock()

	s.transition(status.Authenticated)
	s.bus.Publish(bus.NewEvent(bus.KindLoggedIn, sess))
	s.log.Info("logged in", zap.String("identifier", identifier))
	return sess, nil
}

// Session returns the current session, if any.
func (s *Store) Session() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

func (s *Store) Authenticated() bool {
	_, ok := s.Session()
	return ok
}

// Logout is accepted but does not end the session. It reports whether
// anything changed, which is always false.
func (s *Store) Logout() bool {
	s.log.Info("logout requested; sessions do not end during the process lifetime")
	return false
}

func (s *Store) transition(to status.State) {
	if s.machine == nil || s.machine.Current() == to {
		return
	}
	if err := s.machine.Transition(to); err != nil {
		s.log.Debug("status transition skipped", zap.Error(err))
	}
}

// enqueue must be called with s.mu held so queue order matches mutation order.
func (s *Store) enqueue(key, value string) {
	s.push(write{key: key, value: value})
}

func (s *Store) push(w write) {
	if s.closed {
		s.log.Warn("preference write after close dropped", zap.String("key", w.key))
		return
	}
	s.pending = append(s.pending, w)
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *Store) writer() {
	defer close(s.done)
	for {
		s.mu.Lock()
		batch, closed := s.pending, s.closed
		s.pending = nil
		s.mu.Unlock()

		if len(batch) == 0 {
			if closed {
				return
			}
			<-s.notify
			continue
		}
		for _, w := range batch {
			s.apply(w)
		}
	}
}

func (s *Store) apply(w write) {
	if w.flushed != nil {
		close(w.flushed)
		return
	}
	var err error
	if w.del {
		err = s.kv.DeletePreference(w.key)
	} else {
		err = s.kv.SetPreference(w.key, w.value)
	}
	if err != nil {
		s.log.Error("persist preference",
			zap.String("key", w.key),
			zap.Bool("delete", w.del),
			zap.Error(apperr.Persistence("write preference", err)))
	}
}

// Flush blocks until every write queued before the call has been attempted.
func (s *Store) Flush(ctx context.Context) error {
	flushed := make(chan struct{})
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.push(write{flushed: flushed})
	s.mu.Unlock()

	select {
	case <-flushed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting writes and waits for the queued ones to be attempted.
// When ctx ends first the writer keeps running in the background and Close
// returns ctx.Err(); storage must stay open until it finishes.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
