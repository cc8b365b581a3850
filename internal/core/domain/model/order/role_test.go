package order_test

import (
	"testing"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("should parse shipper and carrier case-insensitively", func(t *testing.T) {
		testCases := []struct {
			raw      string
			expected order.Role
		}{
			{"shipper", order.RoleShipper},
			{"SHIPPER", order.RoleShipper},
			{"carrier", order.RoleCarrier},
			{"Carrier", order.RoleCarrier},
		}

		for _, tc := range testCases {
			role, err := order.ParseRole(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, role)
		}
	})

	t.Run("should reject unrecognized roles", func(t *testing.T) {
		for _, raw := range []string{"", "admin", "customer"} {
			_, err := order.ParseRole(raw)
			require.Error(t, err, "expected %q to be rejected", raw)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate shipper and carrier", func(t *testing.T) {
		require.NoError(t, order.RoleShipper.Validate())
		require.NoError(t, order.RoleCarrier.Validate())
	})

	t.Run("should reject unknown role", func(t *testing.T) {
		require.Error(t, order.RoleUnknown.Validate())
		require.Error(t, order.Role(5).Validate())
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "shipper", order.RoleShipper.String())
	assert.Equal(t, "carrier", order.RoleCarrier.String())
	assert.Equal(t, "unknown", order.RoleUnknown.String())
}
