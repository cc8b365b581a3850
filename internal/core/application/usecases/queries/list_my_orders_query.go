// Package queries contains the read operations of the shipping console.
// Queries go through the order directory service and keep the order board's
// working set current; they never change order state.
package queries

import (
	"errors"

	"freightline/internal/pkg/guard"
)

var (
	ErrListMyOrdersQueryIsNotConstructed = errors.New(
		"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
	)
	ErrPageIsInvalid     = errors.New("page must be greater than 0")
	ErrPageSizeIsInvalid = errors.New("page size must be greater than 0")
)

// ListMyOrdersQuery retrieves one page of the acting user's orders: orders
// they created for shippers, orders assigned to them for carriers. The
// directory service returns them newest-first.
//
// Example:
//
//	query, err := NewListMyOrdersQuery(1, 10)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders, %d pages\n", page.Total, page.Pages)
type ListMyOrdersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListMyOrdersQuery creates a query for one page of the user's orders.
// Page and page size must both be positive.
func NewListMyOrdersQuery(page, pageSize int) (ListMyOrdersQuery, error) {
	query := ListMyOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListMyOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListMyOrdersQueryIsNotConstructed if validation fails.
func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}

// Page returns the requested page number, 1-based.
func (q ListMyOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q ListMyOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListMyOrdersQuery) setPage(page int) error {
	if page <= 0 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *ListMyOrdersQuery) setPageSize(pageSize int) error {
	if pageSize <= 0 {
		return ErrPageSizeIsInvalid
	}

	q.pageSize = pageSize
	return nil
}
