package cart

import (
	"sync"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/google/uuid"
)

// Item is one cart line: a product snapshot plus the count in the cart.
// Quantity is always >= 1; a line that would drop to zero is removed instead.
type Item struct {
	Product  catalog.Product
	Quantity int
}

// Store owns the cart lines and the derived item count. Every mutation
// recomputes the count from the lines before returning, so the badge value can
// never drift from the items.
type Store struct {
	id        uuid.UUID
	mu        sync.RWMutex
	items     []Item
	itemCount int
}

// NewStore returns an empty cart with a fresh session id.
func NewStore() *Store {
	return &Store{id: uuid.New()}
}

// ID identifies this cart session.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Add puts the product in the cart: an existing line grows by one, otherwise a
// new line with quantity 1 is prepended. Add never fails.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			s.recompute()
			return
		}
	}
	s.items = append([]Item{{Product: p, Quantity: 1}}, s.items...)
	s.recompute()
}

// Remove drops the line for the given product id. Absent id is a no-op.
func (s *Store) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = deleteLine(s.items, productID)
	s.recompute()
}

// ChangeQuantity adjusts one line by a single unit. Decreasing a line at
// quantity 1 removes it entirely. Unknown product ids and unknown change
// values are no-ops.
func (s *Store) ChangeQuantity(productID int, change enums.QuantityChange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		switch change {
		case enums.QuantityIncrease:
			s.items[i].Quantity++
		case enums.QuantityDecrease:
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			} else {
				s.items = deleteLine(s.items, productID)
			}
		}
		s.recompute()
		return
	}
}

// Items returns a snapshot of the cart lines, newest first.
func (s *Store) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount returns the aggregate count across all lines.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.itemCount
}

// Len reports the number of distinct lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// recompute derives the aggregate count from the lines. Callers hold the lock.
func (s *Store) recompute() {
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	s.itemCount = total
}

func deleteLine(items []Item, productID int) []Item {
	out := items[:0]
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}
