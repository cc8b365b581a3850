package queries

import (
	"context"
	"fmt"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

// ErrCarrierRoleRequired is returned when a non-carrier asks for the
// available-orders listing.
var ErrCarrierRoleRequired = fmt.Errorf("available orders are visible to carriers only")

// ListAvailableOrdersQueryHandler fetches unassigned pending orders for a
// carrier to pick from. The listing is not part of the board's working set:
// an available order becomes "mine" only after acceptance.
type ListAvailableOrdersQueryHandler struct {
	identity  ports.IdentityProvider
	directory ports.OrderDirectory
}

// NewListAvailableOrdersQueryHandler creates a handler for the
// available-orders listing.
func NewListAvailableOrdersQueryHandler(
	identity ports.IdentityProvider,
	directory ports.OrderDirectory,
) ListAvailableOrdersQueryHandler {
	return ListAvailableOrdersQueryHandler{
		identity:  identity,
		directory: directory,
	}
}

// Handle fetches one page of acceptable orders. Shippers receive
// ErrCarrierRoleRequired without a network call.
func (h ListAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableOrdersQuery,
) (ports.PagedOrders, error) {
	if err := query.Validate(); err != nil {
		return ports.PagedOrders{}, err
	}

	role, err := h.identity.CurrentRole(ctx)
	if err != nil {
		return ports.PagedOrders{}, err
	}
	if role != order.RoleCarrier {
		return ports.PagedOrders{}, fmt.Errorf("%w: acting as %s", ErrCarrierRoleRequired, role)
	}

	return h.directory.ListAvailable(ctx, query.Page(), query.PageSize())
}
