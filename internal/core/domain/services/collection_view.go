package services

import (
	"math"
	"strings"

	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"
)

// CollectionView is a domain service that derives the currently displayed page
// of an order working set from a free-text search term, a status filter, and a
// page number.
//
// Key responsibilities:
//   - Applying the status filter and search term conjunctively, in that order
//   - Computing total pages and clamping the requested page into range
//   - Staying pure: no reordering, no mutation of the source slice
//
// Business rules:
//   - The status filter is an exact, case-insensitive match on the status
//   - The search term matches case-insensitively as a substring against the
//     order number, id, origin, destination, carrier id, customer name, and
//     tracking number
//   - totalPages is at least 1, even for an empty result set
//   - A page beyond the last one is clamped, and the effective page is
//     reported so callers can reset their page state
//
// Ordering is whatever the source sequence provides; the directory service
// returns orders newest-first and this service preserves that.
type CollectionView struct{}

// NewCollectionView creates a new CollectionView instance.
func NewCollectionView() CollectionView {
	return CollectionView{}
}

// ViewPage is one rendered page of the filtered working set.
type ViewPage struct {
	// Items is the slice of orders on the effective page, in source order.
	Items []*order.Order

	// TotalPages is ceil(filtered count / page size), minimum 1.
	TotalPages int

	// Page is the effective 1-based page after clamping. Callers compare it
	// with the page they requested to detect clamping and reset their state.
	Page int

	// Total is the number of orders that matched the filters.
	Total int
}

// Apply filters and paginates the order working set.
//
// Parameters:
//   - orders: the working set, in the order it should be displayed
//   - searchTerm: free-text filter, empty means no search filtering
//   - statusFilter: status name filter, empty means no status filtering;
//     matching is case-insensitive ("Delivered" matches delivered orders)
//   - page: requested 1-based page; values below 1 are clamped to 1, values
//     past the last page are clamped to the last page
//   - pageSize: items per page, must be positive
//
// Returns a ValueIsOutOfRangeError when pageSize is not positive. All other
// inputs are tolerated by clamping, since UI navigation races routinely
// produce transiently stale page numbers.
func (v CollectionView) Apply(
	orders []*order.Order,
	searchTerm string,
	statusFilter string,
	page int,
	pageSize int,
) (ViewPage, error) {
	if pageSize <= 0 {
		return ViewPage{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, math.MaxInt)
	}

	filtered := orders
	if statusFilter != "" {
		filtered = filterByStatus(filtered, statusFilter)
	}
	if searchTerm != "" {
		filtered = filterBySearchTerm(filtered, searchTerm)
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]*order.Order, end-start)
	copy(items, filtered[start:end])

	return ViewPage{
		Items:      items,
		TotalPages: totalPages,
		Page:       page,
		Total:      total,
	}, nil
}

func filterByStatus(orders []*order.Order, statusFilter string) []*order.Order {
	want := strings.ToLower(strings.TrimSpace(statusFilter))
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status().String() == want {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func filterBySearchTerm(orders []*order.Order, searchTerm string) []*order.Order {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	filtered := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if matchesTerm(o, term) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// matchesTerm checks the searchable fields of an order for a substring match.
func matchesTerm(o *order.Order, term string) bool {
	fields := []string{
		o.OrderNumber(),
		o.ID().String(),
		o.Origin(),
		o.Destination(),
		o.Customer().Name(),
		o.TrackingNumber(),
	}
	if carrier := o.Carrier(); carrier != nil {
		fields = append(fields, carrier.String())
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
