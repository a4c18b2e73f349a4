// ABOUTME: Industry and company catalog endpoints
// ABOUTME: List/search/count plus create, update, delete for both resources

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Industry is a catalog industry.
type Industry struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Company is a catalog company. The backend stores the display name under
// CompanyName.
type Company struct {
	ID         string `json:"_id"`
	Name       string `json:"CompanyName"`
	IndustryID string `json:"industryId"`
}

// decodeIndustryList tolerates both response shapes the backend emits: a
// bare array and an {"industries": [...]} envelope.
func decodeIndustryList(data json.RawMessage) ([]Industry, error) {
	var list []Industry
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		Industries []Industry `json:"industries"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding industries: %w", err)
	}
	return envelope.Industries, nil
}

// ListIndustries fetches one page of industries. Page is 1-based; zero
// means the backend default.
func (c *Client) ListIndustries(ctx context.Context, page int) ([]Industry, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/admin/industries", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeIndustryList(raw)
}

// SearchIndustries filters industries by name substring.
func (c *Client) SearchIndustries(ctx context.Context, name string) ([]Industry, error) {
	query := url.Values{"name": {name}}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/admin/industries/search", query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeIndustryList(raw)
}

// CountIndustries returns the catalog-wide industry count.
func (c *Client) CountIndustries(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/industries/count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// CreateIndustry adds a new industry by name.
func (c *Client) CreateIndustry(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/industries", nil, map[string]string{"name": name}, nil)
}

// UpdateIndustry renames an industry.
func (c *Client) UpdateIndustry(ctx context.Context, id, name string) error {
	return c.do(ctx, http.MethodPut, "/api/admin/industries/"+url.PathEscape(id), nil, map[string]string{"name": name}, nil)
}

// DeleteIndustry removes an industry.
func (c *Client) DeleteIndustry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/industries/"+url.PathEscape(id), nil, nil, nil)
}

// LGIndustries lists the industry catalog through the LG-scoped endpoint,
// used when picking an industry ahead of a manual lead entry.
func (c *Client) LGIndustries(ctx context.Context) ([]Industry, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/lg/industry", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeIndustryList(raw)
}

// CompaniesByIndustry lists the companies under one industry.
func (c *Client) CompaniesByIndustry(ctx context.Context, industryID string) ([]Company, error) {
	var out struct {
		Companies []Company `json:"companies"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/lg/companies/byindustry/"+url.PathEscape(industryID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Companies, nil
}

// ListCompanies lists the whole company catalog.
func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	var out struct {
		Companies []Company `json:"companies"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/companies", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Companies, nil
}

// CreateCompany adds a company under an industry.
func (c *Client) CreateCompany(ctx context.Context, name, industryID string) error {
	body := map[string]string{"name": name, "industryId": industryID}
	return c.do(ctx, http.MethodPost, "/api/admin/companies", nil, body, nil)
}

// UpdateCompany renames a company or moves it to another industry.
func (c *Client) UpdateCompany(ctx context.Context, id, name, industryID string) error {
	body := map[string]string{"name": name, "industryId": industryID}
	return c.do(ctx, http.MethodPut, "/api/admin/companies/"+url.PathEscape(id), nil, body, nil)
}

// DeleteCompany removes a company.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/companies/"+url.PathEscape(id), nil, nil, nil)
}
