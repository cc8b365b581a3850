package queries

import (
	"context"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

// GetOrderQueryHandler fetches a single order straight from the directory
// service. The detail view always shows the authoritative record, so the
// handler deliberately bypasses the board and its staged optimistic values.
type GetOrderQueryHandler struct {
	directory ports.OrderDirectory
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(directory ports.OrderDirectory) GetOrderQueryHandler {
	return GetOrderQueryHandler{directory: directory}
}

// Handle fetches the order. Unknown identifiers are reported as
// ports.ErrOrderNotFound.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.directory.GetByID(ctx, query.OrderID())
}
