// Package commands contains the operations that change order state.
// Every command is a validated value object built through its constructor;
// its handler resolves the acting role, applies the transition policy where
// one applies, and talks to the order directory service.
package commands

import (
	"errors"
	"fmt"

	"freightline/internal/core/domain/model/order"
)

// ErrRoleNotAllowed is returned when the acting role may not perform the
// requested operation. The directory service enforces the same rule; this
// check fails fast before any network call.
var ErrRoleNotAllowed = errors.New("operation not allowed for role")

func requireRole(got, want order.Role) error {
	if got != want {
		return fmt.Errorf("%w: %s", ErrRoleNotAllowed, got)
	}
	return nil
}
