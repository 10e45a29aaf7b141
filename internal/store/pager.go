package store

// Page is one slice of a derived view.
type Page[T any] struct {
	Items      []T
	Number     int // clamped into [1, TotalPages]
	TotalPages int
}

// Paginate slices view into fixed-size pages and returns the requested
// page with its number clamped into [1, totalPages]. An empty view has
// exactly one (empty) page, so a non-empty earlier page is never hidden
// behind an out-of-range number.
func Paginate[T any](view []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}

	totalPages := (len(view) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(view) {
		start = len(view)
	}
	if end > len(view) {
		end = len(view)
	}

	return Page[T]{
		Items:      view[start:end],
		Number:     pageNumber,
		TotalPages: totalPages,
	}
}
