package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/zdzakic/booky/internal/logger"
)

// Credentials are the tokens attached to protected requests.
type Credentials struct {
	Access  string
	Refresh string
}

// CredentialStore abstracts where the session lives (the OS keyring in
// production, an in-memory fake in tests).
type CredentialStore interface {
	Load() (Credentials, error)
	StoreAccess(token string) error
	Clear() error
}

// Client talks to the booky backend over its fixed REST contract. All calls
// take a context; the client never retries on its own except for a single
// transparent token refresh on 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialStore
	lang       string
}

// NewClient creates a backend client. creds may be nil for a purely public
// client (the booking form needs no session).
func NewClient(baseURL string, timeout time.Duration, creds CredentialStore) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		creds: creds,
	}
}

// SetLanguage sets the `lang` query param sent with list requests.
func (c *Client) SetLanguage(lang string) {
	c.lang = lang
}

// do executes one request against the backend and decodes the response into
// out (when non-nil). wantStatus is the expected success status. On 401 with
// a stored refresh token the request is replayed once after refreshing; a
// failed refresh clears the session and returns ErrUnauthorized.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, wantStatus int) error {
	resp, err := c.send(ctx, method, path, query, body, true)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.creds != nil {
		resp.Body.Close()
		if refreshErr := c.refresh(ctx); refreshErr != nil {
			_ = c.creds.Clear()
			logger.Warn("Session expired and refresh failed", "path", path)
			return ErrUnauthorized
		}
		resp, err = c.send(ctx, method, path, query, body, true)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, wantStatus); err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	return decodeBody(resp, out)
}

// decodeBody decodes a JSON response body into out.
func decodeBody(resp *http.Response, out interface{}) error {
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// send builds and executes a single HTTP request.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body interface{}, authed bool) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	if authed && c.creds != nil {
		creds, err := c.creds.Load()
		if err == nil && creds.Access != "" {
			req.Header.Set("Authorization", "Bearer "+creds.Access)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("Request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// refresh exchanges the stored refresh token for a new access token.
func (c *Client) refresh(ctx context.Context) error {
	creds, err := c.creds.Load()
	if err != nil || creds.Refresh == "" {
		return fmt.Errorf("no refresh token available")
	}

	resp, err := c.send(ctx, http.MethodPost, "/token/refresh/", nil,
		map[string]string{"refresh": creds.Refresh}, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token refresh rejected with status %d", resp.StatusCode)
	}

	var payload struct {
		Access string `json:"access"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode refresh response: %w", err)
	}
	if payload.Access == "" {
		return fmt.Errorf("refresh response carried no access token")
	}

	logger.Debug("Access token refreshed")
	return c.creds.StoreAccess(payload.Access)
}

// checkStatus maps an unexpected response status onto the error taxonomy.
func checkStatus(resp *http.Response, wantStatus int) error {
	if resp.StatusCode == wantStatus {
		return nil
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode >= 500:
		return ErrServer
	case resp.StatusCode >= 400:
		// 4xx responses carry a `detail` message shown to the user verbatim.
		var payload struct {
			Detail string `json:"detail"`
		}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
			return &ValidationError{StatusCode: resp.StatusCode, Detail: payload.Detail}
		}
		return &ValidationError{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("request rejected with status %d", resp.StatusCode),
		}
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

// withLang returns query extended with the current language, when set.
func (c *Client) withLang(query url.Values) url.Values {
	if c.lang == "" {
		return query
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("lang", c.lang)
	return query
}
