package listing

import (
	"sort"
	"strings"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/angelmondragon/storefront/pkg/pagination"
)

// Options are the fixed policy knobs of the listing pipeline.
type Options struct {
	PageSize int

	// ComposeFilters narrows the keyword search within the category-filtered
	// set. Off, the historical behavior applies: an active keyword searches
	// the full catalog and the category filter is ignored for that pass.
	ComposeFilters bool
}

// Query is one concrete set of listing inputs: what the user typed and picked.
type Query struct {
	Keyword    string
	CategoryID int // 0 means all products
	Sort       enums.SortMode
	Page       int // 1-indexed
}

// Result is the derived view: the visible slice plus everything the page
// chrome needs.
type Result struct {
	Items      []catalog.Product
	Total      int
	Page       int
	TotalPages int
	Buttons    []pagination.Button
	Loading    bool
	LoadError  string
}

// Apply runs the pipeline stages in order: filter by category, filter by
// keyword, sort by price, paginate. It is a pure function of its inputs and
// produces a fresh Result on every call.
func Apply(products []catalog.Product, q Query, opts Options) Result {
	pageSize := pagination.NormalizePageSize(opts.PageSize)

	filtered := applyFilters(products, q, opts.ComposeFilters)
	sortByPrice(filtered, q.Sort)

	total := len(filtered)
	totalPages := pagination.TotalPages(total, pageSize)
	page := pagination.Clamp(q.Page, totalPages)
	start, end := pagination.Bounds(page, pageSize, total)

	return Result{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Buttons:    pagination.Window(page, totalPages),
	}
}

func applyFilters(products []catalog.Product, q Query, compose bool) []catalog.Product {
	keyword := strings.TrimSpace(q.Keyword)

	if !compose {
		// Historical semantics: an active keyword is its own pass over the
		// full catalog and wins over the category selection.
		if keyword != "" {
			return filterByKeyword(products, keyword)
		}
		return filterByCategory(products, q.CategoryID)
	}

	out := filterByCategory(products, q.CategoryID)
	if keyword != "" {
		out = filterByKeyword(out, keyword)
	}
	return out
}

func filterByCategory(products []catalog.Product, categoryID int) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	if categoryID == 0 {
		return append(out, products...)
	}
	for _, p := range products {
		if p.InCategory(categoryID) {
			out = append(out, p)
		}
	}
	return out
}

func filterByKeyword(products []catalog.Product, keyword string) []catalog.Product {
	needle := strings.ToLower(keyword)
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// sortByPrice orders in place. Equal prices fall back to name so the output is
// deterministic.
func sortByPrice(products []catalog.Product, mode enums.SortMode) {
	switch mode {
	case enums.SortModeLowHigh:
		sort.SliceStable(products, func(i, j int) bool {
			if c := products[i].Price.Cmp(products[j].Price); c != 0 {
				return c < 0
			}
			return products[i].Name < products[j].Name
		})
	case enums.SortModeHighLow:
		sort.SliceStable(products, func(i, j int) bool {
			if c := products[i].Price.Cmp(products[j].Price); c != 0 {
				return c > 0
			}
			return products[i].Name < products[j].Name
		})
	}
}
