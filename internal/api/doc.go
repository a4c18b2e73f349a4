// Package api is the REST client for the lead-management backend.
//
// One Client covers the full endpoint surface: authentication (login,
// signup, OTP verification), the LG raw-lead workflow (fetch one, complete,
// skip), today's leads, catalog management (industries, companies), the
// admin raw-lead pool with filtering and pagination, and spreadsheet bulk
// uploads.
//
// # Conventions
//
//   - Authenticated requests carry "Authorization: Bearer <token>". The
//     token is opaque to the client; expiry is entirely the backend's
//     concern and surfaces as an unauthorized APIError.
//   - Every request carries a generated X-Request-ID for correlation.
//   - Non-2xx responses decode the backend's {"message": ...} or
//     {"error": ...} body into *APIError, falling back to a generic string.
//   - No automatic retries anywhere. A failed call leaves the caller in its
//     last good state; retrying is a user decision.
package api
