package catalog

import "github.com/shopspring/decimal"

// Product is a catalog entry. Stock is the catalog-side stock count; the cart
// keeps its own per-line quantity and never touches this field.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Categories  []int           `json:"categories"`
	Variants    []string        `json:"variants"`
	Sizes       []string        `json:"sizes"`
	Stock       int             `json:"stock"`
}

// InCategory reports whether the product carries the given category id.
func (p Product) InCategory(categoryID int) bool {
	for _, id := range p.Categories {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Category is a browsable product grouping.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
