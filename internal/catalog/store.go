package catalog

import (
	"sync"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

// Store holds the product and category lists plus the loading/error flags the
// loader maintains. Listing and cart code only read from it; writes come from
// the loader and the product form boundary.
type Store struct {
	mu         sync.RWMutex
	products   []Product
	categories []Category
	loading    bool
	loadErr    string
}

// NewStore returns an empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// Products returns a snapshot of the product list.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories returns a snapshot of the category list.
func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Len reports the number of products in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// FindProduct looks up a product by id. A missing id is a valid terminal
// state for the detail view, not an error.
func (s *Store) FindProduct(id int) (Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// AddProduct appends a new product. The id must not already exist.
func (s *Store) AddProduct(p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.ID == p.ID {
			return pkgerrors.New(pkgerrors.CodeConflict, "product id already exists")
		}
	}
	s.products = append(s.products, p)
	return nil
}

// EditProduct replaces the product with the same id.
func (s *Store) EditProduct(p Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.products {
		if existing.ID == p.ID {
			s.products[i] = p
			return nil
		}
	}
	return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
}

// ReplaceProducts swaps in a full product list. Loader-facing.
func (s *Store) ReplaceProducts(list []Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = make([]Product, len(list))
	copy(s.products, list)
}

// ReplaceCategories swaps in a full category list. Loader-facing.
func (s *Store) ReplaceCategories(list []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = make([]Category, len(list))
	copy(s.categories, list)
}

// SetLoading toggles the loading flag surfaced to the listing view.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

// Loading reports whether a load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetLoadError records the last load failure; empty clears it.
func (s *Store) SetLoadError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = msg
}

// LoadError returns the surfaced load failure, if any.
func (s *Store) LoadError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}
