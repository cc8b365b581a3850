package queries

import (
	"context"

	"freightline/internal/core/application/board"
	"freightline/internal/core/ports"
)

// ListMyOrdersQueryHandler fetches the acting user's orders from the
// directory service and replaces the order board's working set with the
// fetched page. A refresh therefore drops any stale optimistic values; the
// service's records are authoritative.
type ListMyOrdersQueryHandler struct {
	identity  ports.IdentityProvider
	directory ports.OrderDirectory
	board     *board.OrderBoard
}

// NewListMyOrdersQueryHandler creates a handler for listing the user's
// orders.
func NewListMyOrdersQueryHandler(
	identity ports.IdentityProvider,
	directory ports.OrderDirectory,
	orderBoard *board.OrderBoard,
) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{
		identity:  identity,
		directory: directory,
		board:     orderBoard,
	}
}

// Handle fetches one page of the user's orders and refreshes the board.
func (h ListMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListMyOrdersQuery,
) (ports.PagedOrders, error) {
	if err := query.Validate(); err != nil {
		return ports.PagedOrders{}, err
	}

	role, err := h.identity.CurrentRole(ctx)
	if err != nil {
		return ports.PagedOrders{}, err
	}

	page, err := h.directory.ListMine(ctx, role, query.Page(), query.PageSize())
	if err != nil {
		return ports.PagedOrders{}, err
	}

	h.board.Replace(page.Items)
	return page, nil
}
