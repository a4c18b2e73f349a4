// ABOUTME: Tests for the authorization gate
// ABOUTME: Covers missing tokens, case-insensitive role matching, and RoleAny

package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// staticSession is a SessionSource returning fixed credentials.
type staticSession struct {
	token string
	role  string
}

func (s *staticSession) Resolve() (string, string) {
	return s.token, s.role
}

func TestGate_NoToken(t *testing.T) {
	gate := NewGate(&staticSession{}, slog.Default())

	for _, required := range []Role{RoleAny, RoleAdmin, RoleLG} {
		_, err := gate.Require(required)
		if !errors.Is(err, ErrNotAuthenticated) {
			t.Errorf("Require(%q) error = %v, want ErrNotAuthenticated", required, err)
		}
	}
}

func TestGate_CaseInsensitiveMatch(t *testing.T) {
	// Stored role differs from the required role only by case.
	gate := NewGate(&staticSession{token: "tok", role: "Admin"}, slog.Default())

	id, err := gate.Require(RoleAdmin)
	if err != nil {
		t.Fatalf("Require() error = %v", err)
	}
	if id.Role != RoleAdmin {
		t.Errorf("Role = %q, want %q", id.Role, RoleAdmin)
	}
	if id.Token != "tok" {
		t.Errorf("Token = %q, want %q", id.Token, "tok")
	}

	gate = NewGate(&staticSession{token: "tok", role: "admin"}, slog.Default())
	if _, err := gate.Require(RoleAdmin); err != nil {
		t.Errorf("Require() with lowercase stored role error = %v, want nil", err)
	}
}

func TestGate_RoleMismatch(t *testing.T) {
	gate := NewGate(&staticSession{token: "tok", role: "LG"}, slog.Default())

	_, err := gate.Require(RoleAdmin)
	if !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("Require() error = %v, want ErrRoleMismatch", err)
	}
}

func TestGate_AnyAuthenticatedRole(t *testing.T) {
	gate := NewGate(&staticSession{token: "tok", role: "lg"}, slog.Default())

	id, err := gate.Require(RoleAny)
	if err != nil {
		t.Fatalf("Require(RoleAny) error = %v", err)
	}
	if id.Role != RoleLG {
		t.Errorf("Role = %q, want normalized %q", id.Role, RoleLG)
	}
}

func TestGate_UnknownStoredRole(t *testing.T) {
	gate := NewGate(&staticSession{token: "tok", role: "superuser"}, slog.Default())

	_, err := gate.Require(RoleAdmin)
	if !errors.Is(err, ErrRoleMismatch) {
		t.Errorf("Require(RoleAdmin) error = %v, want ErrRoleMismatch", err)
	}

	// A token alone satisfies RoleAny, whatever the stored role says.
	id, err := gate.Require(RoleAny)
	if err != nil {
		t.Fatalf("Require(RoleAny) error = %v, want nil", err)
	}
	if id.Token != "tok" {
		t.Errorf("Token = %q, want %q", id.Token, "tok")
	}
	if id.Role != RoleAny {
		t.Errorf("Role = %q, want RoleAny for an unrecognized stored role", id.Role)
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	id := &Identity{Token: "tok", Role: RoleLG}
	ctx := WithIdentity(context.Background(), id)

	got := FromContext(ctx)
	if got != id {
		t.Errorf("FromContext() = %v, want the identity that was attached", got)
	}

	if FromContext(context.Background()) != nil {
		t.Error("FromContext() on bare context should return nil")
	}
}
