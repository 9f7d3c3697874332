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

	"github.com/spec-kit/residence-registry/internal/api/dto"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

// APIClient talks to the registry's /students resource. Every call runs
// under the configured timeout; a deadline overrun surfaces as a TIMEOUT
// domain error and is never retried.
type APIClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewAPIClient builds a client for the given base URL.
func NewAPIClient(baseURL string, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/"), http: httpClient}
}

// SetToken attaches a bearer token to subsequent requests. Only needed when
// the server runs with role enforcement.
func (c *APIClient) SetToken(token string) {
	c.token = token
}

// ListResidents fetches the whole collection.
func (c *APIClient) ListResidents(ctx context.Context) ([]dto.ResidentPayload, error) {
	var residents []dto.ResidentPayload
	if err := c.do(ctx, http.MethodGet, "/students", nil, &residents); err != nil {
		return nil, err
	}
	return residents, nil
}

// CreateResident persists a new record.
func (c *APIClient) CreateResident(ctx context.Context, payload dto.ResidentPayload) error {
	return c.do(ctx, http.MethodPost, "/students", payload, nil)
}

// UpdateResident replaces the record at id wholesale.
func (c *APIClient) UpdateResident(ctx context.Context, id string, payload dto.ResidentPayload) error {
	return c.do(ctx, http.MethodPut, "/students/"+id, payload, nil)
}

// DeleteResident removes the record at id.
func (c *APIClient) DeleteResident(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/students/"+id, nil, nil)
}

// Login exchanges credentials for a role-bearing token and installs it.
func (c *APIClient) Login(ctx context.Context, username, password string) error {
	body := dto.LoginRequest{Username: username, Password: password}
	var resp struct {
		Data dto.LoginResponse `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return err
	}
	c.token = resp.Data.Token
	return nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return apperrors.NewTimeout("operation timed out")
		}
		var urlErr interface{ Timeout() bool }
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return apperrors.NewTimeout("operation timed out")
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Code == "" {
		return apperrors.NewDomainError("INTERNAL", fmt.Sprintf("unexpected status %d", resp.StatusCode), resp.StatusCode, nil)
	}
	return apperrors.NewDomainError(envelope.Error.Code, envelope.Error.Message, resp.StatusCode, envelope.Error.Details)
}
