package commands

import (
	"context"
	"time"

	"freightline/internal/core/application/board"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

// UpdateOrderStatusCommandHandler drives the optimistic status-update flow.
// The transition policy runs locally first, so illegal moves fail before any
// network traffic. A legal move is staged on the board immediately, then
// reconciled with the directory service's confirmed record, or rolled back
// if the service refuses.
//
// Concurrent updates to the same order are ordered by issuance: the board
// ignores confirmations and rollbacks for requests that a newer staged
// transition has superseded.
type UpdateOrderStatusCommandHandler struct {
	identity  ports.IdentityProvider
	directory ports.OrderDirectory
	board     *board.OrderBoard
	now       func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	identity ports.IdentityProvider,
	directory ports.OrderDirectory,
	orderBoard *board.OrderBoard,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		identity:  identity,
		directory: directory,
		board:     orderBoard,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes the status-update command and returns the record that is
// now displayed for the order: the service-confirmed one on success, or the
// unchanged current one when the request was a duplicate of the order's
// status.
func (h UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	role, err := h.identity.CurrentRole(ctx)
	if err != nil {
		return nil, err
	}

	current, err := h.currentRecord(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	staged, err := order.RequestTransition(current, role, cmd.Target(), cmd.Reason(), h.now())
	if err != nil {
		return nil, err
	}

	// Duplicate of the current status: the transition already happened, so
	// there is nothing to send.
	if staged.Status() == current.Status() {
		return staged, nil
	}

	seq, ok := h.board.StageOptimistic(staged)
	if !ok {
		return nil, ports.ErrOrderNotFound
	}

	confirmed, err := h.directory.UpdateStatus(ctx, cmd.OrderID(), cmd.Target(), cmd.Reason())
	if err != nil {
		h.board.Reject(cmd.OrderID(), seq)
		return nil, err
	}

	h.board.Confirm(cmd.OrderID(), seq, confirmed)
	return confirmed, nil
}

func (h UpdateOrderStatusCommandHandler) currentRecord(
	ctx context.Context,
	id kernel.UUID,
) (*order.Order, error) {
	if current, ok := h.board.Get(id); ok {
		return current, nil
	}

	fetched, err := h.directory.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	h.board.Put(fetched)
	return fetched, nil
}
