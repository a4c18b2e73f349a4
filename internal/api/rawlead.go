// ABOUTME: Raw-lead workflow and admin pool endpoints
// ABOUTME: Fetch-one, complete, skip, filtered listing, and summary counts

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/iitgjobs/leadctl/internal/lead"
)

// FetchRawLead requests the one raw lead currently assigned to the caller.
// A nil lead with a nil error means none is available; message then carries
// the backend's wording, if any.
func (c *Client) FetchRawLead(ctx context.Context) (*lead.RawLead, string, error) {
	var out struct {
		lead.RawLead
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/lg/rawlead/one", nil, nil, &out); err != nil {
		return nil, "", err
	}
	if out.ID == "" {
		return nil, out.Message, nil
	}
	raw := out.RawLead
	return &raw, "", nil
}

// CompleteRawLead submits a finished lead. The payload carries
// isComplete=true; the backend marks the lead done and unassigns it.
func (c *Client) CompleteRawLead(ctx context.Context, id string, sub *lead.Submission) error {
	return c.do(ctx, http.MethodPut, "/api/lg/rawlead/"+url.PathEscape(id), nil, sub, nil)
}

// SkipRawLead hands the lead back for reassignment instead of marking it
// done. Edits made so far are preserved in the payload.
func (c *Client) SkipRawLead(ctx context.Context, id string, sub *lead.Submission) error {
	return c.do(ctx, http.MethodPut, "/api/lg/rawlead/skip/"+url.PathEscape(id), nil, sub, nil)
}

// ListRawLeadsParams filter and paginate the admin raw-lead pool. Page is
// 1-based.
type ListRawLeadsParams struct {
	Filters Filters
	Page    int
	Limit   int
}

// RawLeadPage is one page of the admin raw-lead pool.
type RawLeadPage struct {
	Leads []lead.RawLead `json:"leads"`
	Total int            `json:"total"`
}

// ListRawLeads fetches a filtered, paginated page of the raw-lead pool.
func (c *Client) ListRawLeads(ctx context.Context, params ListRawLeadsParams) (*RawLeadPage, error) {
	query := params.Filters.Values()
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	var out RawLeadPage
	if err := c.do(ctx, http.MethodGet, "/api/admin/getrawleads", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RawLeadSummary is the three-way completion breakdown of the pool.
type RawLeadSummary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

// FetchRawLeadSummary returns pool-wide completion counts.
func (c *Client) FetchRawLeadSummary(ctx context.Context) (*RawLeadSummary, error) {
	var out RawLeadSummary
	if err := c.do(ctx, http.MethodGet, "/api/admin/rawleads/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
