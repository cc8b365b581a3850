package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

type MockIdentityProvider struct{ mock.Mock }

func (m *MockIdentityProvider) CurrentRole(ctx context.Context) (order.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).(order.Role), args.Error(1)
}

func (m *MockIdentityProvider) IsAuthenticated(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type MockOrderDirectory struct{ mock.Mock }

func (m *MockOrderDirectory) ListMine(
	ctx context.Context, role order.Role, page, pageSize int,
) (ports.PagedOrders, error) {
	args := m.Called(ctx, role, page, pageSize)
	return args.Get(0).(ports.PagedOrders), args.Error(1)
}

func (m *MockOrderDirectory) ListAvailable(
	ctx context.Context, page, pageSize int,
) (ports.PagedOrders, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).(ports.PagedOrders), args.Error(1)
}

func (m *MockOrderDirectory) GetByID(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderDirectory) Create(ctx context.Context, draft ports.OrderDraft) (*order.Order, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderDirectory) Accept(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderDirectory) UpdateStatus(
	ctx context.Context, id kernel.UUID, target order.Status, reason string,
) (*order.Order, error) {
	args := m.Called(ctx, id, target, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

var _ ports.OrderDirectory = (*MockOrderDirectory)(nil)
var _ ports.IdentityProvider = (*MockIdentityProvider)(nil)

func restoreOrder(t *testing.T, id kernel.UUID, number string, status order.Status) *order.Order {
	t.Helper()

	item, err := order.NewItem("Pallet", 2, 10)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ada Fisher", "ada@example.com", "+31 10 555 0101")
	require.NoError(t, err)

	createdAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:          id,
		OrderNumber: number,
		ShipperID:   kernel.NewUUID(),
		Origin:      "Rotterdam",
		Destination: "Hamburg",
		Weight:      50,
		Items:       []order.Item{item},
		Customer:    customer,
		Status:      status,
		Timeline:    order.Timeline{CreatedAt: createdAt, UpdatedAt: createdAt},
	})
	require.NoError(t, err)
	return o
}

func restoreOrders(t *testing.T, count int, status order.Status) []*order.Order {
	t.Helper()

	orders := make([]*order.Order, 0, count)
	for i := 0; i < count; i++ {
		orders = append(orders,
			restoreOrder(t, kernel.NewUUID(), fmt.Sprintf("ORD-%08d", i+1), status))
	}
	return orders
}
