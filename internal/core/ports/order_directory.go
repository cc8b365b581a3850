package ports

import (
	"context"
	"errors"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
)

var (
	// ErrOrderNotFound is returned when the directory service has no order
	// with the requested identifier.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderAlreadyTaken is returned when accepting an order that another
	// carrier accepted first.
	ErrOrderAlreadyTaken = errors.New("order already taken by another carrier")
)

// PagedOrders is one page of orders as returned by the directory service,
// newest-first.
type PagedOrders struct {
	Items []*order.Order
	Total int
	Page  int
	Pages int
}

// OrderDraft carries the shipper-provided fields for order creation.
// The directory service assigns the identifier, order number, and timestamps.
type OrderDraft struct {
	Origin      string
	Destination string
	Weight      float64
	Items       []order.Item
	Customer    order.Customer
	Notes       string
}

// OrderDirectory is the boundary to the external Order Directory Service,
// which owns order persistence, matching, and authorization enforcement.
// The console only holds transient, read-mostly copies of what this port
// returns.
//
// All calls may fail with a *ServiceError-style transport error; the core
// performs no retries of its own.
type OrderDirectory interface {
	// ListMine retrieves the acting user's orders: orders created by them
	// for shippers, orders assigned to them for carriers. Results are
	// newest-first.
	ListMine(ctx context.Context, role order.Role, page, pageSize int) (PagedOrders, error)

	// ListAvailable retrieves unassigned pending orders a carrier may
	// accept. Carrier role only.
	ListAvailable(ctx context.Context, page, pageSize int) (PagedOrders, error)

	// GetByID retrieves a single order. Returns ErrOrderNotFound when the
	// identifier is unknown.
	GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Create registers a new order in pending status and returns the
	// service-confirmed record.
	Create(ctx context.Context, draft OrderDraft) (*order.Order, error)

	// Accept assigns the acting carrier to a pending order. Returns
	// ErrOrderAlreadyTaken when another carrier got there first.
	Accept(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus requests a status transition and returns the confirmed
	// record. Reason is required by the service for cancellations.
	UpdateStatus(ctx context.Context, id kernel.UUID, target order.Status, reason string) (*order.Order, error)
}
