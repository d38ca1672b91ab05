// Package availability maintains the Cleaner Availability Index: a derived,
// in-memory view of which cleaners currently hold an order in the active
// subset {accepted, going, started}.
//
// The index is a cache over the order store, never a source of truth. It is
// consulted only to fail claim attempts fast; the authoritative exclusivity
// check always happens against the store inside the claiming transaction.
// Whenever the index could have drifted it is rebuilt from the store
// (see the jobs package for the periodic reconciliation).
package availability

import (
	"context"
	"sync"

	"cleaning/internal/core/domain/model/order"
)

// ActiveOrdersSource provides the orders currently in an active status.
// Implemented by the order repository.
type ActiveOrdersSource interface {
	GetAllInActiveStatus(ctx context.Context) ([]*order.Order, error)
}

// Index maps a cleaner to the active order they hold, if any.
// Safe for concurrent use.
type Index struct {
	mu   sync.RWMutex
	busy map[int64]int64 // cleanerID -> active order id
}

// NewIndex creates an empty availability index.
func NewIndex() *Index {
	return &Index{
		busy: make(map[int64]int64),
	}
}

// IsBusy reports whether the cleaner holds an active order according to the
// index. A false answer is advisory only; claims re-check against the store.
func (i *Index) IsBusy(cleanerID int64) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	_, ok := i.busy[cleanerID]
	return ok
}

// ActiveOrder returns the id of the cleaner's active order and whether one exists.
func (i *Index) ActiveOrder(cleanerID int64) (int64, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	orderID, ok := i.busy[cleanerID]
	return orderID, ok
}

// MarkBusy records that the cleaner now holds the given active order.
func (i *Index) MarkBusy(cleanerID int64, orderID int64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.busy[cleanerID] = orderID
}

// Clear removes the cleaner's entry, typically after their order left the
// active subset or was reassigned.
func (i *Index) Clear(cleanerID int64) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.busy, cleanerID)
}

// Apply updates the index from the given order's current state: the assigned
// cleaner is marked busy while the order is active and cleared otherwise.
// Unassigned orders are ignored.
func (i *Index) Apply(o *order.Order) {
	if o == nil || o.Cleaner() == nil {
		return
	}

	if o.IsActive() {
		i.MarkBusy(*o.Cleaner(), o.ID())
		return
	}

	// Clear only if the entry still points at this order; the cleaner may
	// have been reassigned and already hold a different active order.
	i.mu.Lock()
	defer i.mu.Unlock()
	if orderID, ok := i.busy[*o.Cleaner()]; ok && orderID == o.ID() {
		delete(i.busy, *o.Cleaner())
	}
}

// Rebuild recomputes the whole index from the order store, replacing the
// current contents atomically.
func (i *Index) Rebuild(ctx context.Context, source ActiveOrdersSource) error {
	orders, err := source.GetAllInActiveStatus(ctx)
	if err != nil {
		return err
	}

	busy := make(map[int64]int64, len(orders))
	for _, o := range orders {
		if o.Cleaner() != nil {
			busy[*o.Cleaner()] = o.ID()
		}
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.busy = busy
	return nil
}

// Len returns the number of busy cleaners currently indexed.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return len(i.busy)
}
