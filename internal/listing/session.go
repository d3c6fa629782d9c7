package listing

import (
	"sync"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

// Session holds the current listing query for one browsing session against an
// injected catalog store. Changing the keyword, category or sort resets the
// page to 1, matching how a user expects the listing to behave.
type Session struct {
	catalog *catalog.Store
	opts    Options

	mu    sync.Mutex
	query Query
}

// NewSession builds a session over the given catalog store.
func NewSession(store *catalog.Store, opts Options) (*Session, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog store is required")
	}
	return &Session{
		catalog: store,
		opts:    opts,
		query:   Query{Page: 1},
	}, nil
}

// SetKeyword updates the search keyword and resets to the first page.
func (s *Session) SetKeyword(keyword string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Keyword = keyword
	s.query.Page = 1
}

// SetCategory updates the category filter (0 = all) and resets to the first
// page.
func (s *Session) SetCategory(categoryID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.CategoryID = categoryID
	s.query.Page = 1
}

// SetSort updates the price sort mode and resets to the first page.
func (s *Session) SetSort(mode enums.SortMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.Sort = mode
	s.query.Page = 1
}

// SetPage moves to the given 1-indexed page. The rendered page is clamped
// into range against the current result set.
func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 {
		page = 1
	}
	s.query.Page = page
}

// Query returns the current query values.
func (s *Session) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// View derives the visible product slice from a fresh catalog snapshot. The
// clamped page is written back so subsequent navigation starts from the page
// actually shown.
func (s *Session) View() Result {
	s.mu.Lock()
	query := s.query
	s.mu.Unlock()

	result := Apply(s.catalog.Products(), query, s.opts)
	result.Loading = s.catalog.Loading()
	result.LoadError = s.catalog.LoadError()

	s.mu.Lock()
	s.query.Page = result.Page
	s.mu.Unlock()

	return result
}
