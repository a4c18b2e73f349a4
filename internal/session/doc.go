// Package session is the single source of truth for "is a user logged in,
// and with what role."
//
// Credentials (an opaque token and a role string) are persisted as two keys
// across two storage scopes:
//
//   - durable: survives restarts, rooted in its own directory under the
//     user config dir (the "remember me" choice at login)
//   - ephemeral: rooted under the OS temp dir, cleared by the platform
//     between boots
//
// The Manager holds rehydrated in-memory state and exposes Login, Logout and
// Resolve. Reads fall back in strict priority order: memory, then durable,
// then ephemeral, so a cold start before rehydration still sees a valid
// session. Logout wipes both storage scopes in full, not just the two
// session keys.
//
// Token and role are always written and cleared together; a source that
// holds only one of the two is treated as having no session at all.
package session
