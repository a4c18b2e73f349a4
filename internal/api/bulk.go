// ABOUTME: Spreadsheet bulk-import endpoints over multipart uploads
// ABOUTME: The client streams the file through; parsing happens server-side

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// BulkLeadResult is the three-way outcome of a lead spreadsheet import.
type BulkLeadResult struct {
	Inserted   int `json:"inserted"`
	Duplicates int `json:"duplicates"`
	Skipped    int `json:"skipped"`
}

// BulkRawLeadResult is the outcome of a raw-lead spreadsheet import.
type BulkRawLeadResult struct {
	SuccessCount int `json:"successCount"`
	FailedCount  int `json:"failedCount"`
}

// BulkUploadLeads uploads a lead spreadsheet for server-side import.
func (c *Client) BulkUploadLeads(ctx context.Context, filename string, file io.Reader) (*BulkLeadResult, error) {
	var out BulkLeadResult
	if err := c.upload(ctx, "/api/admin/leads/bulk", filename, file, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUploadRawLeads uploads a raw-lead spreadsheet tagged with the
// industry the rows belong to.
func (c *Client) BulkUploadRawLeads(ctx context.Context, filename string, file io.Reader, industry string) (*BulkRawLeadResult, error) {
	fields := map[string]string{"industry": industry}
	var out BulkRawLeadResult
	if err := c.upload(ctx, "/api/admin/leads/bulk/rawlead", filename, file, fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// upload posts a multipart form with the file under the "file" part plus
// any extra fields.
func (c *Client) upload(ctx context.Context, path, filename string, file io.Reader, fields map[string]string, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("building multipart form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading upload file: %w", err)
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("writing form field %s: %w", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing multipart form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}
