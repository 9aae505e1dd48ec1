package scholarsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Signup registers a new user. The server emails a one-time code which must
// be passed to VerifyOTP before Login succeeds.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", "", req)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP confirms the emailed code for a pending signup.
func (c *Client) VerifyOTP(ctx context.Context, req VerifyRequest) (*MessageResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/verify", "", req)
	if err != nil {
		return nil, err
	}

	var out MessageResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for an authenticated Session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", req)
	if err != nil {
		return nil, err
	}

	var out LoginResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return c.Resume(out.Token, out.User), nil
}

// Resume rebuilds a Session from a previously stored token and profile.
func (c *Client) Resume(token string, user UserProfile) *Session {
	return &Session{client: c, token: token, user: user}
}

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// GetReadiness checks if the service and its database are ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *Client) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
