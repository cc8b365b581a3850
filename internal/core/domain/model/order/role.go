package order

import (
	"fmt"
	"strings"

	"freightline/internal/pkg/errs"
)

// Role identifies which side of a freight order an actor is on.
// Shippers create orders and may cancel them; carriers accept orders and
// advance them through the delivery workflow. The role gates which status
// transitions an actor may request, see AvailableTransitions.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleShipper is the account type that creates orders.
	RoleShipper

	// RoleCarrier is the account type that accepts and delivers orders.
	RoleCarrier
)

// getRoleStrings returns a map of valid Role values to their string representations.
func getRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleShipper: "shipper",
		RoleCarrier: "carrier",
	}
}

// ParseRole converts an account type string from the identity provider into
// a Role. Matching is case-insensitive. Returns an error for unrecognized
// strings so integration bugs surface early instead of silently disabling
// transitions.
func ParseRole(s string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for role, str := range getRoleStrings() {
		if str == normalized {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid",
		fmt.Errorf("%q is not a recognized role", s),
	)
}

// Validate checks if the Role value is valid.
// Valid roles are RoleShipper and RoleCarrier.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the lowercase name of the role, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
