package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrIllegalTransition is returned when a requested target status is not
	// reachable from the order's current status for the acting role.
	ErrIllegalTransition = errors.New("status transition is not allowed")

	// ErrMissingReason is returned when a cancellation is requested without
	// a reason.
	ErrMissingReason = errors.New("cancellation requires a reason")
)

// AvailableTransitions computes the set of statuses the acting role is
// permitted to transition an order into, given its current status.
//
// The policy is a data-driven table rather than imperative branching:
//   - Terminal statuses (Delivered, Cancelled) yield an empty set for every role.
//   - Shippers may only cancel, and only while the order is non-terminal.
//   - Carriers advance the order one step along the forward sequence:
//     pending->accepted, accepted->picked_up, picked_up->in_transit,
//     in_transit->delivered.
//
// An invalid role is an error, never a silent empty set, so wiring bugs with
// the identity provider surface early.
func AvailableTransitions(current Status, role Role) ([]Status, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if err := current.Validate(); err != nil {
		return nil, err
	}

	if current.IsTerminal() {
		return []Status{}, nil
	}

	switch role {
	case RoleShipper:
		return []Status{Cancelled}, nil
	case RoleCarrier:
		next, ok := current.Next()
		if !ok {
			return []Status{}, nil
		}
		return []Status{next}, nil
	default:
		// unreachable after Validate, kept for exhaustiveness
		return nil, role.Validate()
	}
}

// CanTransition reports whether the acting role may move an order from its
// current status into target. Invalid roles propagate as errors.
func CanTransition(current Status, role Role, target Status) (bool, error) {
	available, err := AvailableTransitions(current, role)
	if err != nil {
		return false, err
	}
	for _, s := range available {
		if s == target {
			return true, nil
		}
	}
	return false, nil
}

// RequestTransition validates and applies a status transition, producing a
// new Order and leaving the input untouched.
//
// Rules enforced, in order:
//   - the acting role must be valid (invalid roles are reported, not ignored)
//   - re-applying the order's current status is a no-op returning an
//     equivalent copy, so a confirmed transition can be retried safely
//   - target must be a member of AvailableTransitions(order.Status(), role),
//     otherwise ErrIllegalTransition
//   - cancellation requires a non-empty reason, otherwise ErrMissingReason
//
// The function performs no I/O. Callers are responsible for invoking the
// directory service with the same (order id, target) pair and reconciling the
// confirmed record; a rejected transition must leave the displayed order
// unchanged, which the value semantics guarantee.
func RequestTransition(o *Order, role Role, target Status, reason string, at time.Time) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}

	// Retry safety: applying the status the order already carries changes
	// nothing and must not fail.
	if o.status == target {
		return o.clone(), nil
	}

	allowed, err := CanTransition(o.status, role, target)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: %s -> %s as %s", ErrIllegalTransition, o.status, target, role)
	}

	if target == Cancelled && strings.TrimSpace(reason) == "" {
		return nil, ErrMissingReason
	}

	next := o.clone()
	next.status = target
	next.timeline = o.timeline.stamped(target, at)
	if target == Cancelled {
		next.cancellationReason = reason
	} else if strings.TrimSpace(reason) != "" {
		next.notes = reason
	}
	return next, nil
}
