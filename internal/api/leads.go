// ABOUTME: LG lead endpoints: today's leads, manual lead entry, HR lookup
// ABOUTME: Plus the admin-scoped lead and user listings

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/iitgjobs/leadctl/internal/lead"
)

// TodayLeads lists the leads the caller entered today.
func (c *Client) TodayLeads(ctx context.Context) ([]lead.RawLead, error) {
	var out struct {
		Leads []lead.RawLead `json:"leads"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/lg/todayleads", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Leads, nil
}

// UpdateTodayLead patches one of today's leads. Fields holds only the
// values being changed, e.g. {"isComplete": true} for a status toggle.
func (c *Client) UpdateTodayLead(ctx context.Context, id string, fields map[string]any) error {
	return c.do(ctx, http.MethodPut, "/api/lg/todayleads/update/"+url.PathEscape(id), nil, fields, nil)
}

// AddLeadParams is the manual lead-entry form. Mobile keeps the full list
// here; only the completion workflow collapses it.
type AddLeadParams struct {
	Name             string   `json:"name"`
	Designation      string   `json:"designation"`
	Mobile           []string `json:"mobile"`
	Email            string   `json:"email"`
	Location         string   `json:"location"`
	Remarks          string   `json:"remarks"`
	Division         string   `json:"division"`
	ProductLine      string   `json:"productLine"`
	TurnOver         string   `json:"turnOver"`
	EmployeeStrength string   `json:"employeeStrength"`
	IndustryName     string   `json:"industryName"`
	CompanyName      string   `json:"companyName"`
}

// AddLead creates a lead from manual entry.
func (c *Client) AddLead(ctx context.Context, params AddLeadParams) error {
	return c.do(ctx, http.MethodPost, "/api/lg/addhr", nil, params, nil)
}

// HRLeadsByCompany lists existing HR contacts for an industry/company
// pair, used to avoid duplicate manual entries.
func (c *Client) HRLeadsByCompany(ctx context.Context, industryID, companyID string) ([]lead.RawLead, error) {
	query := url.Values{
		"industryId": {industryID},
		"companyId":  {companyID},
	}

	var out struct {
		HR []lead.RawLead `json:"hr"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/lg/gethr/idscom", query, nil, &out); err != nil {
		return nil, err
	}
	return out.HR, nil
}

// ListLeads lists all leads, admin-scoped.
func (c *Client) ListLeads(ctx context.Context) ([]lead.RawLead, error) {
	var out struct {
		Leads []lead.RawLead `json:"leads"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/leads", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Leads, nil
}

// User is an operator account as listed by the admin users endpoint.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ListUsers lists operator accounts, admin-scoped.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out struct {
		Users []User `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}
