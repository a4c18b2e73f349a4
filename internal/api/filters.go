// ABOUTME: Screen-scoped filter state for listing endpoints
// ABOUTME: A key/value map rendered to query parameters, never persisted

package api

import "net/url"

// Filters maps filter keys to string values. Lifecycle is bound to one
// screen invocation; filters are never persisted.
type Filters map[string]string

// Values renders the filters as query parameters, dropping empty values.
func (f Filters) Values() url.Values {
	query := url.Values{}
	for key, value := range f {
		if value != "" {
			query.Set(key, value)
		}
	}
	return query
}
