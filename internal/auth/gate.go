// ABOUTME: Authorization gate evaluated before any protected command runs
// ABOUTME: Resolves credentials via the session fallback chain and checks roles

package auth

import (
	"errors"
	"log/slog"
)

// Gate errors. Callers map both to "back to the entry screen" behavior;
// they are never shown as backend error messages.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrRoleMismatch     = errors.New("role not permitted")
)

// SessionSource yields the current credentials, falling back through the
// session storage chain. Empty strings mean no session.
type SessionSource interface {
	Resolve() (token, role string)
}

// Identity is an authorized token/role pair produced by the gate.
type Identity struct {
	Token string
	Role  Role
}

// Gate authorizes access to protected commands.
type Gate struct {
	sessions SessionSource
	logger   *slog.Logger
}

// NewGate creates a gate over the given session source.
func NewGate(sessions SessionSource, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{sessions: sessions, logger: logger}
}

// Require authorizes the current session against a required role. RoleAny
// admits any authenticated session, including one whose stored role fails
// to parse: possession of a token is the only requirement. A specific
// required role treats an unparseable stored role as a mismatch.
func (g *Gate) Require(required Role) (*Identity, error) {
	token, roleStr := g.sessions.Resolve()
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	role, err := ParseRole(roleStr)
	if err != nil {
		g.logger.Warn("stored role is not recognized", "role", roleStr)
		if required == RoleAny {
			return &Identity{Token: token, Role: RoleAny}, nil
		}
		return nil, ErrRoleMismatch
	}

	if required != RoleAny && role != required {
		g.logger.Debug("role mismatch", "have", role, "need", required)
		return nil, ErrRoleMismatch
	}

	return &Identity{Token: token, Role: role}, nil
}
