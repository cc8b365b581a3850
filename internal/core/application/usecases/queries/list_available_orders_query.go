package queries

import (
	"errors"

	"freightline/internal/pkg/guard"
)

var ErrListAvailableOrdersQueryIsNotConstructed = errors.New(
	"ListAvailableOrdersQuery must be created via NewListAvailableOrdersQuery constructor",
)

// ListAvailableOrdersQuery retrieves one page of unassigned pending orders a
// carrier may accept.
type ListAvailableOrdersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListAvailableOrdersQuery creates a query for one page of acceptable
// orders. Page and page size must both be positive.
func NewListAvailableOrdersQuery(page, pageSize int) (ListAvailableOrdersQuery, error) {
	query := ListAvailableOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return ListAvailableOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListAvailableOrdersQueryIsNotConstructed if validation fails.
func (q ListAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableOrdersQueryIsNotConstructed)
}

// Page returns the requested page number, 1-based.
func (q ListAvailableOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the requested page size.
func (q ListAvailableOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q *ListAvailableOrdersQuery) setPage(page int) error {
	if page <= 0 {
		return ErrPageIsInvalid
	}

	q.page = page
	return nil
}

func (q *ListAvailableOrdersQuery) setPageSize(pageSize int) error {
	if pageSize <= 0 {
		return ErrPageSizeIsInvalid
	}

	q.pageSize = pageSize
	return nil
}
