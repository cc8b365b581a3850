package order

import (
	"fmt"
	"strings"

	"freightline/internal/pkg/errs"
)

// Status represents the lifecycle state of a freight order.
// It implements a state machine with defined transitions to ensure
// orders follow the carrier delivery workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> InTransit ──> Delivered
//	   │            │            │             │
//	   └────────────┴────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal: no transitions lead out of them.
//
// Status is a value object that validates state transitions and provides
// canonical lowercase string representations for persistence and transport.
// External systems vary in casing ("PENDING", "Picked_Up"); ParseStatus
// normalizes at the boundary so comparisons inside the core are exact.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a shipper creates an order.
	// Orders in this status are waiting for a carrier to accept them.
	Pending

	// Accepted indicates a carrier has taken the order.
	Accepted

	// PickedUp indicates the carrier has collected the cargo at the origin.
	PickedUp

	// InTransit indicates the cargo is on its way to the destination.
	InTransit

	// Delivered indicates the cargo reached its destination.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their canonical
// lowercase string representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// forwardSequence maps each status to its single successor in the carrier
// delivery workflow. Statuses without an entry have no forward transition.
// The table is data rather than branching so the policy stays independently
// testable and extensible.
func forwardSequence() map[Status]Status {
	return map[Status]Status{
		Pending:   Accepted,
		Accepted:  PickedUp,
		PickedUp:  InTransit,
		InTransit: Delivered,
	}
}

// ParseStatus converts a status string from an external source into a Status.
// Matching is case-insensitive, so "PENDING", "Pending", and "pending" all
// resolve to the same value. Returns an error for unrecognized strings.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, PickedUp, InTransit, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the canonical lowercase name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones, for which
// it returns "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the single forward successor of the status in the carrier
// workflow, and whether one exists. Terminal statuses and Unknown have no
// successor.
func (s Status) Next() (Status, bool) {
	next, ok := forwardSequence()[s]
	return next, ok
}
