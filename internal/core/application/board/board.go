// Package board maintains the console's working set of orders and its view
// state. It is the only stateful piece of the core: everything below it
// (policy engine, collection view) is pure, and everything above it (use
// cases) treats orders as immutable values.
//
// The board also implements the optimistic-update protocol for status
// transitions. A transition is staged locally before the directory service
// confirms it, then reconciled with the authoritative response or rolled
// back on failure. Staging hands out a per-order sequence number; a
// confirmation or rollback carrying a stale sequence is ignored, so the
// winning value follows request issuance order rather than response arrival
// order.
package board

import (
	"sync"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/domain/services"
)

// OrderBoard holds the orders fetched from the directory service together
// with the current search term, status filter, and page. Safe for concurrent
// use.
type OrderBoard struct {
	mu   sync.RWMutex
	view services.CollectionView

	orders []*order.Order

	searchTerm   string
	statusFilter string
	page         int
	pageSize     int

	// baseline keeps the last authoritative record per order id while an
	// optimistic value is staged on top of it.
	baseline map[string]*order.Order

	// seq is the last issued optimistic sequence per order id.
	seq map[string]uint64
}

// NewOrderBoard creates an empty board with the given page size.
func NewOrderBoard(pageSize int) *OrderBoard {
	return &OrderBoard{
		view:     services.NewCollectionView(),
		page:     1,
		pageSize: pageSize,
		baseline: make(map[string]*order.Order),
		seq:      make(map[string]uint64),
	}
}

// Replace swaps in a freshly fetched working set, dropping any optimistic
// bookkeeping. The fetched records are authoritative by definition. Search,
// filter, and page state are kept; View clamps the page if the new set is
// smaller.
func (b *OrderBoard) Replace(orders []*order.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.orders = make([]*order.Order, len(orders))
	copy(b.orders, orders)
	b.baseline = make(map[string]*order.Order)
	b.seq = make(map[string]uint64)
}

// Put stores an authoritative record. A known order is updated in place; a
// new one goes to the top of the working set, matching the newest-first
// ordering of the directory service.
func (b *OrderBoard) Put(o *order.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if idx := b.indexOf(o.ID()); idx >= 0 {
		b.orders[idx] = o
		return
	}
	b.orders = append([]*order.Order{o}, b.orders...)
}

// SetSearchTerm updates the free-text search. Changing the term resets the
// page to 1 so result sets never show a stale, out-of-range page.
func (b *OrderBoard) SetSearchTerm(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.searchTerm != term {
		b.searchTerm = term
		b.page = 1
	}
}

// SetStatusFilter updates the status filter. Changing the filter resets the
// page to 1.
func (b *OrderBoard) SetStatusFilter(filter string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.statusFilter != filter {
		b.statusFilter = filter
		b.page = 1
	}
}

// SetPage moves to the requested page. Values below 1 are clamped to 1;
// values past the last page are clamped on the next View call.
func (b *OrderBoard) SetPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if page < 1 {
		page = 1
	}
	b.page = page
}

// Page returns the board's current page number.
func (b *OrderBoard) Page() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.page
}

// View computes the currently displayed page from the working set and view
// state. When the collection view clamps the page, the board adopts the
// effective page so subsequent navigation starts from a valid position.
func (b *OrderBoard) View() (services.ViewPage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	page, err := b.view.Apply(b.orders, b.searchTerm, b.statusFilter, b.page, b.pageSize)
	if err != nil {
		return services.ViewPage{}, err
	}
	b.page = page.Page
	return page, nil
}

// Get returns the current record for an order id, staged or authoritative.
func (b *OrderBoard) Get(id kernel.UUID) (*order.Order, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, o := range b.orders {
		if o.ID().IsEqual(id) {
			return o, true
		}
	}
	return nil, false
}

// StageOptimistic displays a provisional record for an order before the
// directory service confirms the transition. It returns the sequence number
// the caller must present to Confirm or Reject. Staging a second value for
// the same order supersedes the first: the earlier request's outcome will be
// ignored as stale.
//
// The order must already be in the working set; unknown ids report false.
func (b *OrderBoard) StageOptimistic(next *order.Order) (uint64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOf(next.ID())
	if idx < 0 {
		return 0, false
	}

	key := next.ID().String()
	if _, staged := b.baseline[key]; !staged {
		b.baseline[key] = b.orders[idx]
	}
	b.seq[key]++
	b.orders[idx] = next
	return b.seq[key], true
}

// Confirm reconciles a staged transition with the authoritative record from
// the directory service. A confirmation carrying a stale sequence (a newer
// value was staged meanwhile) is ignored and reports false.
func (b *OrderBoard) Confirm(id kernel.UUID, seq uint64, confirmed *order.Order) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := id.String()
	if b.seq[key] != seq {
		return false
	}

	if idx := b.indexOf(id); idx >= 0 {
		b.orders[idx] = confirmed
	}
	delete(b.baseline, key)
	delete(b.seq, key)
	return true
}

// Reject rolls a staged transition back to the last authoritative record, so
// a failed request leaves the displayed order unchanged. Stale rollbacks
// (superseded by a newer staged value) are ignored and report false.
func (b *OrderBoard) Reject(id kernel.UUID, seq uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := id.String()
	if b.seq[key] != seq {
		return false
	}

	if base, ok := b.baseline[key]; ok {
		if idx := b.indexOf(id); idx >= 0 {
			b.orders[idx] = base
		}
	}
	delete(b.baseline, key)
	delete(b.seq, key)
	return true
}

// indexOf must be called with the lock held.
func (b *OrderBoard) indexOf(id kernel.UUID) int {
	for i, o := range b.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}
