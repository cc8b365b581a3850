package commands

import (
	"context"

	"freightline/internal/core/application/board"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

// CreateOrderCommandHandler registers new orders with the directory service.
// Only shippers may create orders; the confirmed record lands on the order
// board so it shows up without waiting for the next refresh.
type CreateOrderCommandHandler struct {
	identity  ports.IdentityProvider
	directory ports.OrderDirectory
	board     *board.OrderBoard
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	identity ports.IdentityProvider,
	directory ports.OrderDirectory,
	orderBoard *board.OrderBoard,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		identity:  identity,
		directory: directory,
		board:     orderBoard,
	}
}

// Handle processes the order creation command and returns the record the
// directory service confirmed, including the assigned order number.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	role, err := h.identity.CurrentRole(ctx)
	if err != nil {
		return nil, err
	}
	if err = requireRole(role, order.RoleShipper); err != nil {
		return nil, err
	}

	created, err := h.directory.Create(ctx, ports.OrderDraft{
		Origin:      cmd.Origin(),
		Destination: cmd.Destination(),
		Weight:      cmd.Weight(),
		Items:       cmd.Items(),
		Customer:    cmd.Customer(),
		Notes:       cmd.Notes(),
	})
	if err != nil {
		return nil, err
	}

	h.board.Put(created)
	return created, nil
}
