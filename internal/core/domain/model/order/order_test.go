package order_test

import (
	"testing"
	"time"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem("Machine parts", 4, 12.5)
	require.NoError(t, err)
	return []order.Item{item}
}

func testCustomer(t *testing.T) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer("Ada Fisher", "ada@example.com", "+1-555-0100")
	require.NoError(t, err)
	return customer
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Rotterdam",
		"Hamburg",
		50,
		testItems(t),
		testCustomer(t),
		"",
		time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("Pallet", 2, 100)

		require.NoError(t, err)
		assert.Equal(t, "Pallet", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.InDelta(t, 100, item.UnitWeight(), 0.001)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem("  ", 1, 1)
		require.Error(t, err)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := order.NewItem("Pallet", 0, 1)
		require.Error(t, err)

		_, err = order.NewItem("Pallet", -3, 1)
		require.Error(t, err)
	})

	t.Run("should reject non-positive unit weight", func(t *testing.T) {
		_, err := order.NewItem("Pallet", 1, 0)
		require.Error(t, err)
	})
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		customer, err := order.NewCustomer("Ada Fisher", "ada@example.com", "+1-555-0100")

		require.NoError(t, err)
		assert.Equal(t, "Ada Fisher", customer.Name())
		assert.Equal(t, "ada@example.com", customer.Email())
		assert.Equal(t, "+1-555-0100", customer.Phone())
	})

	t.Run("should require all fields", func(t *testing.T) {
		_, err := order.NewCustomer("", "ada@example.com", "+1-555-0100")
		require.Error(t, err)

		_, err = order.NewCustomer("Ada Fisher", "", "+1-555-0100")
		require.Error(t, err)

		_, err = order.NewCustomer("Ada Fisher", "ada@example.com", "")
		require.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with order number", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Regexp(t, `^ORD-[0-9A-F]{8}$`, o.OrderNumber())
		assert.False(t, o.CarrierAssigned())
		assert.Nil(t, o.Carrier())
		assert.Empty(t, o.TrackingNumber())
		assert.Equal(t, "Rotterdam", o.Origin())
		assert.Equal(t, "Hamburg", o.Destination())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should record creation time in timeline", func(t *testing.T) {
		o := newTestOrder(t)

		timeline := o.Timeline()
		assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), timeline.CreatedAt)
		assert.Nil(t, timeline.AcceptedAt)
		assert.Nil(t, timeline.DeliveredAt)
	})

	t.Run("should reject invalid order id", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), "A", "B", 1, testItems(t), testCustomer(t), "", time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject empty route", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "", "B", 1, testItems(t), testCustomer(t), "", time.Now(),
		)
		require.Error(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "A", "  ", 1, testItems(t), testCustomer(t), "", time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject non-positive weight", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "A", "B", 0, testItems(t), testCustomer(t), "", time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "A", "B", 1, nil, testCustomer(t), "", time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("should reject zero customer", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), "A", "B", 1, testItems(t), order.Customer{}, "", time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should assign carrier and advance to accepted", func(t *testing.T) {
		o := newTestOrder(t)
		carrierID := kernel.NewUUID()
		at := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

		accepted, err := o.Accept(carrierID, "TRK-0A1B2C3D", at)
		require.NoError(t, err)

		assert.Equal(t, order.Accepted, accepted.Status())
		assert.True(t, accepted.CarrierAssigned())
		assert.True(t, accepted.Carrier().IsEqual(carrierID))
		assert.Equal(t, "TRK-0A1B2C3D", accepted.TrackingNumber())
		require.NotNil(t, accepted.Timeline().AcceptedAt)
		assert.Equal(t, at, *accepted.Timeline().AcceptedAt)

		// input order is untouched
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.CarrierAssigned())
	})

	t.Run("should reject second carrier", func(t *testing.T) {
		o := newTestOrder(t)
		accepted, err := o.Accept(kernel.NewUUID(), "TRK-00000001", time.Now())
		require.NoError(t, err)

		_, err = accepted.Accept(kernel.NewUUID(), "TRK-00000002", time.Now())
		require.ErrorIs(t, err, order.ErrCarrierAlreadyAssigned)
	})

	t.Run("should reject invalid carrier id", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.Accept(kernel.UUID{}, "TRK-00000001", time.Now())
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full order state", func(t *testing.T) {
		id := kernel.NewUUID()
		shipperID := kernel.NewUUID()
		carrierID := kernel.NewUUID()
		accepted := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

		o, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:             id,
			OrderNumber:    "ORD-0A1B2C3D",
			ShipperID:      shipperID,
			CarrierID:      &carrierID,
			Origin:         "Rotterdam",
			Destination:    "Hamburg",
			Weight:         50,
			Items:          testItems(t),
			Customer:       testCustomer(t),
			TrackingNumber: "TRK-0A1B2C3D",
			Status:         order.InTransit,
			Timeline: order.Timeline{
				CreatedAt:  accepted.Add(-24 * time.Hour),
				AcceptedAt: &accepted,
				UpdatedAt:  accepted,
			},
		})
		require.NoError(t, err)

		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-0A1B2C3D", o.OrderNumber())
		assert.Equal(t, order.InTransit, o.Status())
		assert.True(t, o.CarrierAssigned())
		assert.Equal(t, "TRK-0A1B2C3D", o.TrackingNumber())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:          kernel.NewUUID(),
			OrderNumber: "ORD-0A1B2C3D",
			ShipperID:   kernel.NewUUID(),
			Origin:      "A",
			Destination: "B",
			Weight:      1,
			Items:       testItems(t),
			Customer:    testCustomer(t),
			Status:      order.Unknown,
		})
		require.Error(t, err)
	})

	t.Run("should reject invalid carrier id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := order.RestoreOrder(order.RestoreOrderParams{
			ID:          kernel.NewUUID(),
			OrderNumber: "ORD-0A1B2C3D",
			ShipperID:   kernel.NewUUID(),
			CarrierID:   &zero,
			Origin:      "A",
			Destination: "B",
			Weight:      1,
			Items:       testItems(t),
			Customer:    testCustomer(t),
			Status:      order.Pending,
		})
		require.Error(t, err)
	})
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o := newTestOrder(t)

	items := o.Items()
	items[0] = order.Item{}

	assert.Equal(t, "Machine parts", o.Items()[0].Name())
}
