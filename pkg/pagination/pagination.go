package pagination

const (
	// DefaultPageSize is the number of items shown per listing page.
	DefaultPageSize = 9
)

// Button is a single entry in the rendered pager strip: either a page number
// or an ellipsis standing in for a collapsed run of pages.
type Button struct {
	Page     int
	Current  bool
	Ellipsis bool
}

// NormalizePageSize enforces the configured default page size.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	return size
}

// TotalPages returns the page count for a result set. An empty set has zero
// pages.
func TotalPages(total, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Clamp forces a 1-indexed page into [1, totalPages]. With zero pages there is
// nothing to show and page 1 is returned so a later non-empty result starts at
// the beginning.
func Clamp(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// Bounds returns the half-open slice interval [start, end) of the items
// visible on the given 1-indexed page.
func Bounds(page, pageSize, total int) (int, int) {
	pageSize = NormalizePageSize(pageSize)
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}

// Window builds the pager strip for the given current page: the first page,
// the last page, the current page and its neighbors are shown as numbers, and
// every other run of pages collapses into one ellipsis.
func Window(current, totalPages int) []Button {
	if totalPages <= 0 {
		return nil
	}

	buttons := make([]Button, 0, totalPages)
	for page := 1; page <= totalPages; page++ {
		if page == 1 || page == totalPages || page == current || page == current-1 || page == current+1 {
			buttons = append(buttons, Button{Page: page, Current: page == current})
			continue
		}
		if len(buttons) > 0 && buttons[len(buttons)-1].Ellipsis {
			continue
		}
		buttons = append(buttons, Button{Ellipsis: true})
	}
	return buttons
}
