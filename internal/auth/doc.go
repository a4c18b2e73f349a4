// Package auth provides role parsing and the authorization gate for leadctl.
//
// # Roles
//
// Roles form a closed enumeration:
//
//   - Admin: manages industries, companies and the raw-lead pool
//   - LG (Lead Generator): sources and completes assigned raw leads
//
// The backend reports roles as free-form strings; ParseRole normalizes them
// case-insensitively once at the boundary so internal comparisons are never
// string-fuzzy.
//
// # Gate
//
// The Gate authorizes access before a protected command runs. It resolves
// the current token and role through the session fallback chain and rejects
// with ErrNotAuthenticated (no token) or ErrRoleMismatch (wrong role). The
// zero Role means "any authenticated role".
//
// No token-expiry check happens client-side. A stale token simply fails the
// next API call with an unauthorized error, which each command surfaces
// through its own error handling.
//
// # Identity propagation
//
// The authenticated identity travels through request handling via
// context.Context:
//
//	ctx = auth.WithIdentity(ctx, id)
//	id := auth.FromContext(ctx)
package auth
