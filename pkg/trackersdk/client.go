package trackersdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the FitTrack service. It covers the
// unauthenticated surface; Login upgrades it to a Session.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for the service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login exchanges credentials for a bearer token and returns an
// authenticated Session. Bad credentials surface as an *APIError with
// code "invalid_credentials".
func (c *SDKClient) Login(ctx context.Context, username, password string) (*Session, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/login",
		LoginRequest{Username: username, Password: password},
		&out, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return &Session{
		client:   c,
		token:    out.Token,
		UserID:   out.UserID,
		UserType: out.UserType,
	}, nil
}

// Livez reports whether the process is up.
func (c *SDKClient) Livez(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/livez", nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseError(resp, body)
	}
	return nil
}

// Readyz reports whether the service can reach its database.
func (c *SDKClient) Readyz(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/readyz", nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return parseError(resp, body)
	}
	return nil
}

func (c *SDKClient) url(path string) string {
	return c.BaseURL + path
}

// do performs one HTTP request, attaching the bearer token when non-empty.
func (c *SDKClient) do(
	ctx context.Context,
	method, path string,
	body io.Reader,
	token string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	return resp, nil
}

// doJSON performs a request with an optional JSON body and decodes the
// response into out. A status other than expectStatus becomes an *APIError.
func (c *SDKClient) doJSON(
	ctx context.Context,
	method, path string,
	in, out any,
	expectStatus int,
) error {
	return c.doJSONAuth(ctx, method, path, in, out, expectStatus, "")
}

func (c *SDKClient) doJSONAuth(
	ctx context.Context,
	method, path string,
	in, out any,
	expectStatus int,
	token string,
) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	resp, err := c.do(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != expectStatus {
		return parseError(resp, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
