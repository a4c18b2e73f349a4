// ABOUTME: Session manager holding in-memory credentials over two stores
// ABOUTME: Implements login/logout and the memory-durable-ephemeral resolver

package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrIncompleteSession is returned when a login attempt supplies only one of
// token and role. The two are always written together.
var ErrIncompleteSession = errors.New("token and role must both be set")

// Manager coordinates the in-memory session with the durable and ephemeral
// storage scopes.
type Manager struct {
	mu        sync.Mutex
	token     string
	role      string
	durable   Store
	ephemeral Store
	logger    *slog.Logger
}

// NewManager builds a manager over the given stores and rehydrates the
// in-memory state once, preferring durable over ephemeral.
func NewManager(durable, ephemeral Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{durable: durable, ephemeral: ephemeral, logger: logger}
	m.token, m.role = resolve(durable, ephemeral)
	return m
}

// Login records a new session. With remember set the credentials go to the
// durable store, otherwise to the ephemeral store; the opposite scope is
// purged of any previous session first. In-memory state is updated
// synchronously. The token is an opaque pass-through; no format validation
// is performed.
func (m *Manager) Login(token, role string, remember bool) error {
	if token == "" || role == "" {
		return ErrIncompleteSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	target, other := m.ephemeral, m.durable
	scope := "ephemeral"
	if remember {
		target, other = m.durable, m.ephemeral
		scope = "durable"
	}

	// A login owns both scopes. Credentials left behind in the other
	// scope would shadow this session on the next start, since the
	// resolver always prefers durable storage.
	if err := other.Delete(KeyToken); err != nil {
		return fmt.Errorf("clearing previous session: %w", err)
	}
	if err := other.Delete(KeyRole); err != nil {
		return fmt.Errorf("clearing previous session: %w", err)
	}

	if err := target.Set(KeyToken, token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	if err := target.Set(KeyRole, role); err != nil {
		// Never leave a token without its role.
		_ = target.Delete(KeyToken)
		return fmt.Errorf("persisting role: %w", err)
	}

	m.token = token
	m.role = role
	m.logger.Debug("session established", "scope", scope, "role", role)
	return nil
}

// Logout clears both storage scopes in full and resets in-memory state.
// Anything else cached in those scopes is destroyed too; this is an
// accepted but blunt behavior. Both scopes are cleared even if one fails.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errDurable := m.durable.Clear()
	errEphemeral := m.ephemeral.Clear()
	m.token = ""
	m.role = ""

	if err := errors.Join(errDurable, errEphemeral); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	m.logger.Debug("session cleared")
	return nil
}

// Resolve returns the current token and role, falling back from in-memory
// state to durable storage to ephemeral storage, in that order. Empty
// strings mean no session.
func (m *Manager) Resolve() (token, role string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && m.role != "" {
		return m.token, m.role
	}
	return resolve(m.durable, m.ephemeral)
}

// resolve reads the first store that holds a complete token/role pair.
// Stores are consulted in the order given; read errors are treated as
// absent so a broken scope never masks a valid lower-priority one.
func resolve(stores ...Store) (token, role string) {
	for _, s := range stores {
		if s == nil {
			continue
		}
		t, err := s.Get(KeyToken)
		if err != nil || t == "" {
			continue
		}
		r, err := s.Get(KeyRole)
		if err != nil || r == "" {
			continue
		}
		return t, r
	}
	return "", ""
}
