// Package gateway is the HTTP adapter for the remote helpdesk backend. It
// owns the endpoint paths, query-parameter encoding, and response envelopes;
// callers only see ports.Gateway.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
	"github.com/faveomobile/helpdesk-client/internal/core/ports"
)

const defaultTimeout = 15 * time.Second

// pageSize is the fixed directory page size the backend contract uses.
const pageSize = 10

// Fixed categorical parameters the registration endpoint expects.
const (
	registerScenario = "create"
	registerCategory = "requester"
	registerPanel    = "client"
)

// Client implements ports.Gateway over plain HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Login exchanges credentials for a bearer token via
// POST /v3/api/login?email=..&password=..
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("password", password)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/v3/api/login", params, "", &resp); err != nil {
		return "", err
	}
	if resp.Data.Token == "" {
		return "", &domain.GatewayError{StatusCode: http.StatusOK, Message: "login response missing token"}
	}
	return resp.Data.Token, nil
}

// Register creates a requester account via POST /v3/user/create/api with the
// fixed scenario/category/panel parameters alongside the user fields.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) error {
	params := url.Values{}
	params.Set("first_name", in.FirstName)
	params.Set("last_name", in.LastName)
	params.Set("email", in.Email)
	params.Set("password", in.Password)
	params.Set("scenario", registerScenario)
	params.Set("category", registerCategory)
	params.Set("panel", registerPanel)

	return c.do(ctx, http.MethodPost, "/v3/user/create/api", params, "", nil)
}

// ForgotPassword requests a reset email via POST /api/password/email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	params := url.Values{}
	params.Set("email", email)
	return c.do(ctx, http.MethodPost, "/api/password/email", params, "", nil)
}

// ListUsers fetches one directory page via GET /v3/user-export-data, filtered
// to the user and agent roles and sorted descending.
func (c *Client) ListUsers(ctx context.Context, in ports.ListUsersInput) ([]domain.UserRecord, error) {
	params := url.Values{}
	params.Set("roles[0]", "user")
	params.Set("roles[1]", "agent")
	params.Set("sort-order", "desc")
	params.Set("limit", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(in.Page))
	if in.SearchQuery != "" {
		params.Set("search-query", in.SearchQuery)
	}

	var resp struct {
		Data struct {
			Data []domain.UserRecord `json:"data"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/v3/user-export-data", params, in.Token, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Data, nil
}

// GetUser looks up a single record via GET /v3/api/get-user/view/{id}.
func (c *Client) GetUser(ctx context.Context, token string, id int64) (*domain.UserRecord, error) {
	var resp struct {
		Data *domain.UserRecord `json:"data"`
	}
	path := "/v3/api/get-user/view/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodGet, path, nil, token, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, domain.ErrUserNotFound
	}
	return resp.Data, nil
}

// do issues one request and decodes the response into out (when non-nil).
// 2xx is success; any other status becomes a GatewayError carrying the
// server's message body when one is present.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, token string, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("gateway request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("gateway request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.GatewayError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// serverMessage pulls the "message" field out of an error body, if any.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
