package ports

import (
	"context"
	"errors"

	"freightline/internal/core/domain/model/order"
)

// ErrNotAuthenticated is returned when the session has expired or was never
// established.
var ErrNotAuthenticated = errors.New("session is not authenticated")

// IdentityProvider is the boundary to the external session/identity service.
// It is an opaque source of the acting user's role and authentication state;
// token mechanics are not this core's concern.
type IdentityProvider interface {
	// CurrentRole resolves the acting user's role. An unrecognized account
	// type is an error, never a silent default.
	CurrentRole(ctx context.Context) (order.Role, error)

	// IsAuthenticated reports whether the session is currently valid.
	IsAuthenticated(ctx context.Context) (bool, error)
}
