package queries_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"freightline/internal/core/application/board"
	"freightline/internal/core/application/usecases/queries"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

func TestNewListMyOrdersQuery_WhenPagingIsInvalid_ShouldReturnError(t *testing.T) {
	_, err := queries.NewListMyOrdersQuery(0, 10)
	require.ErrorIs(t, err, queries.ErrPageIsInvalid)

	_, err = queries.NewListMyOrdersQuery(1, 0)
	require.ErrorIs(t, err, queries.ErrPageSizeIsInvalid)
}

func TestListMyOrdersQuery_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var query queries.ListMyOrdersQuery

	require.ErrorIs(t, query.Validate(), queries.ErrListMyOrdersQueryIsNotConstructed)
}

func TestListMyOrdersQueryHandler_Handle_RefreshesBoard(t *testing.T) {
	ctx := t.Context()
	fetched := restoreOrders(t, 3, order.Pending)

	identity := new(MockIdentityProvider)
	directory := new(MockOrderDirectory)
	mock.InOrder(
		identity.On("CurrentRole", ctx).Return(order.RoleShipper, nil).Once(),
		directory.On("ListMine", ctx, order.RoleShipper, 1, 10).
			Return(ports.PagedOrders{Items: fetched, Total: 3, Page: 1, Pages: 1}, nil).Once(),
	)

	orderBoard := board.NewOrderBoard(10)
	h := queries.NewListMyOrdersQueryHandler(identity, directory, orderBoard)

	query, err := queries.NewListMyOrdersQuery(1, 10)
	require.NoError(t, err)

	page, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 3)

	view, err := orderBoard.View()
	require.NoError(t, err)
	assert.Len(t, view.Items, 3)

	identity.AssertExpectations(t)
	directory.AssertExpectations(t)
}

func TestListMyOrdersQueryHandler_Handle_DirectoryError(t *testing.T) {
	ctx := t.Context()
	serviceErr := errors.New("directory unavailable")

	identity := new(MockIdentityProvider)
	directory := new(MockOrderDirectory)
	mock.InOrder(
		identity.On("CurrentRole", ctx).Return(order.RoleCarrier, nil).Once(),
		directory.On("ListMine", ctx, order.RoleCarrier, 1, 10).
			Return(ports.PagedOrders{}, serviceErr).Once(),
	)

	orderBoard := board.NewOrderBoard(10)
	orderBoard.Replace(restoreOrders(t, 2, order.Accepted))
	h := queries.NewListMyOrdersQueryHandler(identity, directory, orderBoard)

	query, err := queries.NewListMyOrdersQuery(1, 10)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, serviceErr)

	// A failed refresh keeps the previous working set on display.
	view, err := orderBoard.View()
	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
}
