package commands

import (
	"context"

	"freightline/internal/core/application/board"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

// AcceptOrderCommandHandler assigns the acting carrier to a pending order.
// Acceptance is decided entirely by the directory service: two carriers may
// race for the same order and exactly one wins, the other receives
// ports.ErrOrderAlreadyTaken.
type AcceptOrderCommandHandler struct {
	identity  ports.IdentityProvider
	directory ports.OrderDirectory
	board     *board.OrderBoard
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	identity ports.IdentityProvider,
	directory ports.OrderDirectory,
	orderBoard *board.OrderBoard,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		identity:  identity,
		directory: directory,
		board:     orderBoard,
	}
}

// Handle processes the acceptance command and returns the confirmed record,
// now carrying the carrier assignment and tracking number.
func (h AcceptOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	role, err := h.identity.CurrentRole(ctx)
	if err != nil {
		return nil, err
	}
	if err = requireRole(role, order.RoleCarrier); err != nil {
		return nil, err
	}

	accepted, err := h.directory.Accept(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	h.board.Put(accepted)
	return accepted, nil
}
