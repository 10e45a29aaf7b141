package store

// List composes one screen's pipeline: cache → derived view → page.
// The derived view and page are recomputed on demand from the declared
// inputs, never stored, so they can't drift from the cache.
type List[T any] struct {
	store    *Store[T]
	matches  func(T, string) bool
	filterFn func(string) func(T) bool

	search   string
	filter   string
	page     int
	pageSize int
}

// NewList wires a pipeline over a store. matches is the resource's search
// predicate; filterFn maps a filter value to its predicate.
func NewList[T any](store *Store[T], pageSize int, matches func(T, string) bool, filterFn func(string) func(T) bool) *List[T] {
	return &List[T]{
		store:    store,
		matches:  matches,
		filterFn: filterFn,
		filter:   FilterAll,
		page:     1,
		pageSize: pageSize,
	}
}

// Store returns the underlying cache.
func (l *List[T]) Store() *Store[T] {
	return l.store
}

// SetSearch updates the search term and resets to page 1.
func (l *List[T]) SetSearch(term string) {
	if term == l.search {
		return
	}
	l.search = term
	l.page = 1
}

// SetFilter updates the filter and resets to page 1.
func (l *List[T]) SetFilter(filter string) {
	if filter == l.filter {
		return
	}
	l.filter = filter
	l.page = 1
}

// View returns the derived view list for the current search and filter.
func (l *List[T]) View() []T {
	return Derive(l.store.Items(), l.search, l.matches, l.filterFn(l.filter))
}

// Page returns the current page of the derived view. The stored page
// number is clamped whenever the view shrank beneath it.
func (l *List[T]) Page() Page[T] {
	page := Paginate(l.View(), l.pageSize, l.page)
	l.page = page.Number
	return page
}

// NextPage advances one page, saturating at the last page.
func (l *List[T]) NextPage() {
	l.page = Paginate(l.View(), l.pageSize, l.page+1).Number
}

// PrevPage goes back one page, saturating at page 1.
func (l *List[T]) PrevPage() {
	if l.page > 1 {
		l.page--
	}
}
