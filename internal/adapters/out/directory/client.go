// Package directory implements the ports.OrderDirectory boundary against the
// Order Directory Service's HTTP API.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// ServiceError carries a directory service failure that is neither a missing
// order nor an acceptance conflict. The core treats it as opaque.
type ServiceError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("directory service: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
	}
	return fmt.Sprintf("directory service: %s (http %d)", e.Message, e.StatusCode)
}

// Credentials identify the acting user towards the directory service. The
// console runs one session at a time, so they are fixed at construction.
type Credentials struct {
	UserID      string
	AccountType string
}

// Client is an HTTP client for the Order Directory Service, implementing
// ports.OrderDirectory.
type Client struct {
	baseURL     string
	credentials Credentials
	httpClient  *http.Client
	log         *slog.Logger
}

var _ ports.OrderDirectory = (*Client)(nil)

// NewClient creates a directory service client for the given base URL.
func NewClient(baseURL string, credentials Credentials, log *slog.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		credentials: credentials,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		log:         log.With("component", "directory_client"),
	}
}

// ListMine retrieves one page of the acting user's orders.
func (c *Client) ListMine(
	ctx context.Context, role order.Role, page, pageSize int,
) (ports.PagedOrders, error) {
	if err := role.Validate(); err != nil {
		return ports.PagedOrders{}, err
	}

	query := url.Values{}
	query.Set("role", role.String())
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var resp pagedResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/orders?"+query.Encode(), nil, &resp)
	if err != nil {
		return ports.PagedOrders{}, err
	}
	return resp.toDomain()
}

// ListAvailable retrieves one page of unassigned pending orders.
func (c *Client) ListAvailable(ctx context.Context, page, pageSize int) (ports.PagedOrders, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var resp pagedResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/orders/available?"+query.Encode(), nil, &resp)
	if err != nil {
		return ports.PagedOrders{}, err
	}
	return resp.toDomain()
}

// GetByID retrieves a single order.
func (c *Client) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var resp orderResponse
	err := c.do(ctx, http.MethodGet, "/api/v1/orders/"+id.String(), nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toDomain()
}

// Create registers a new order and returns the confirmed record with the
// service-assigned identifier and order number.
func (c *Client) Create(ctx context.Context, draft ports.OrderDraft) (*order.Order, error) {
	var resp orderResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/orders", newCreateOrderRequest(draft), &resp)
	if err != nil {
		return nil, err
	}
	return resp.toDomain()
}

// Accept assigns the acting carrier to a pending order.
func (c *Client) Accept(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	var resp orderResponse
	err := c.do(ctx, http.MethodPost, "/api/v1/orders/"+id.String()+"/accept", nil, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toDomain()
}

// UpdateStatus requests a status transition and returns the confirmed record.
func (c *Client) UpdateStatus(
	ctx context.Context, id kernel.UUID, target order.Status, reason string,
) (*order.Order, error) {
	body := updateStatusRequest{Status: target.String(), Reason: reason}

	var resp orderResponse
	err := c.do(ctx, http.MethodPatch, "/api/v1/orders/"+id.String()+"/status", body, &resp)
	if err != nil {
		return nil, err
	}
	return resp.toDomain()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", c.credentials.UserID)
	req.Header.Set("X-Account-Type", c.credentials.AccountType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("directory service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}

	return c.mapError(method, path, resp)
}

func (c *Client) mapError(method, path string, resp *http.Response) error {
	var errResp errorResponse
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &errResp)

	c.log.Warn("directory service error",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"code", errResp.Code,
	)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ports.ErrOrderNotFound
	case http.StatusConflict:
		return ports.ErrOrderAlreadyTaken
	}

	message := errResp.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &ServiceError{
		StatusCode: resp.StatusCode,
		Code:       errResp.Code,
		Message:    message,
	}
}
