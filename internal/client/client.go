// Package client talks to the LocalFlow REST collaborator. Every call takes a
// context, carries the optional X-Username scoping header, and maps transport
// or non-2xx failures onto domain errors so callers can degrade gracefully.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/localflow/localflow-backend/internal/domain"
)

const defaultTimeout = 10 * time.Second

// Client is an HTTP client for the collaborator API.
type Client struct {
	baseURL    string
	username   string
	httpClient *http.Client
}

// New creates a Client. username may be empty for the anonymous scope.
func New(baseURL, username string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// problem is the subset of the server's RFC 7807 body the client cares about.
type problem struct {
	Detail string `json:"detail"`
}

// createPayload is the wire form of a transaction submission.
type createPayload struct {
	Date     string `json:"date"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
}

type credentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Username string `json:"username"`
}

// ListTransactions fetches the caller's transactions.
func (c *Client) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	var transactions []*domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction submits a new transaction and returns the stored record.
func (c *Client) CreateTransaction(ctx context.Context, create *domain.TransactionCreate) (*domain.Transaction, error) {
	payload := createPayload{
		Date:     create.Date,
		Amount:   create.Amount.String(),
		Type:     string(create.Type),
		Category: create.Category,
		Note:     create.Note,
	}
	var transaction domain.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions/", payload, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction by ID.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, nil)
}

// YearlyStats fetches server-computed highlights for a year.
func (c *Client) YearlyStats(ctx context.Context, year int) (*domain.YearlyHighlights, error) {
	var highlights domain.YearlyHighlights
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/stats/year/%d", year), nil, &highlights); err != nil {
		return nil, err
	}
	return &highlights, nil
}

// Register creates an account on the collaborator.
func (c *Client) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/register", credentialsPayload{Username: username, Password: password}, nil)
}

// Login verifies credentials and returns the confirmed username.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/login", credentialsPayload{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	return resp.Username, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.username != "" {
		req.Header.Set("X-Username", c.username)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode response: %v", domain.ErrUnavailable, err)
		}
	}
	return nil
}

// statusError maps a non-2xx response to a domain error, falling back to the
// server's detail text when no fixed mapping applies.
func (c *Client) statusError(resp *http.Response) error {
	var p problem
	_ = json.NewDecoder(resp.Body).Decode(&p)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrTransactionNotFound
	case http.StatusConflict:
		return domain.ErrUsernameTaken
	case http.StatusUnauthorized:
		return domain.ErrInvalidCredentials
	}
	if p.Detail != "" {
		return fmt.Errorf("server rejected request: %s", p.Detail)
	}
	return fmt.Errorf("%w: unexpected status %d", domain.ErrUnavailable, resp.StatusCode)
}
