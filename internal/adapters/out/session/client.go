// Package session implements the ports.IdentityProvider boundary against the
// session service's HTTP API. The session service is an opaque source of the
// acting user's role and authentication state; token mechanics stay on its
// side of the wire.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

type meResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"user_id,omitempty"`
	AccountType   string `json:"account_type,omitempty"`
}

// Client is an HTTP client for the session service, implementing
// ports.IdentityProvider.
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

var _ ports.IdentityProvider = (*Client)(nil)

// NewClient creates a session service client for the given base URL, acting
// as the given user.
func NewClient(baseURL, userID string) *Client {
	return &Client{
		baseURL:    baseURL,
		userID:     userID,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// CurrentRole resolves the acting user's role from the session service. An
// account type the console does not recognize is an error, never a silent
// default.
func (c *Client) CurrentRole(ctx context.Context) (order.Role, error) {
	me, err := c.fetchMe(ctx)
	if err != nil {
		return order.RoleUnknown, err
	}
	if !me.Authenticated {
		return order.RoleUnknown, ports.ErrNotAuthenticated
	}

	role, err := order.ParseRole(me.AccountType)
	if err != nil {
		return order.RoleUnknown, fmt.Errorf("session service returned account type %q: %w",
			me.AccountType, err)
	}
	return role, nil
}

// IsAuthenticated reports whether the session is currently valid. An expired
// session is a regular false, not an error.
func (c *Client) IsAuthenticated(ctx context.Context) (bool, error) {
	me, err := c.fetchMe(ctx)
	if err != nil {
		return false, err
	}
	return me.Authenticated, nil
}

func (c *Client) fetchMe(ctx context.Context) (meResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/auth/me", nil)
	if err != nil {
		return meResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-User-Id", c.userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return meResponse{}, fmt.Errorf("session service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return meResponse{Authenticated: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return meResponse{}, fmt.Errorf("session service returned http %d", resp.StatusCode)
	}

	var me meResponse
	if err := json.NewDecoder(resp.Body).Decode(&me); err != nil {
		return meResponse{}, fmt.Errorf("decode response: %w", err)
	}
	return me, nil
}
