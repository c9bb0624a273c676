// Package client submits customer batches to the admin import endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/importfile"
)

const (
	importPath     = "/admin/customers/import"
	defaultTimeout = 5 * time.Minute
)

var ErrImportRequest = errors.New("import request failed")

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type ImportResponse struct {
	ImportID  string                `json:"import_id"`
	Imported  int                   `json:"imported"`
	Failed    int                   `json:"failed"`
	Customers []domain.Customer     `json:"customers"`
	Results   []domain.ImportResult `json:"results"`
}

// FailedEmails lists the emails of the rows that were not imported, in
// result order.
func (r ImportResponse) FailedEmails() []string {
	var emails []string
	for _, result := range r.Results {
		if !result.Success {
			emails = append(emails, result.Email)
		}
	}
	return emails
}

type importRequest struct {
	Customers []importfile.Record `json:"customers"`
}

type errorEnvelope struct {
	Error *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTPClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Import posts records in one request. A non-2xx answer is returned as an
// ErrImportRequest carrying the server's error message.
func (c *Client) Import(ctx context.Context, records []importfile.Record) (ImportResponse, error) {
	body, err := json.Marshal(importRequest{Customers: records})
	if err != nil {
		return ImportResponse{}, fmt.Errorf("encode import request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+importPath, bytes.NewReader(body))
	if err != nil {
		return ImportResponse{}, fmt.Errorf("build import request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return ImportResponse{}, fmt.Errorf("%w: %v", ErrImportRequest, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return ImportResponse{}, fmt.Errorf("%w: read response: %v", ErrImportRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ImportResponse{}, fmt.Errorf("%w: %s", ErrImportRequest, errorMessage(resp.StatusCode, payload))
	}

	var out ImportResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return ImportResponse{}, fmt.Errorf("%w: decode response: %v", ErrImportRequest, err)
	}
	return out, nil
}

func errorMessage(status int, payload []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil || envelope.Error == nil {
		return fmt.Sprintf("status %d", status)
	}

	msg := envelope.Error.Message
	if len(envelope.Error.Details) > 0 {
		msg += ": " + strings.Join(envelope.Error.Details, "; ")
	}
	return fmt.Sprintf("status %d: %s", status, msg)
}
