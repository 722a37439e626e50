package view

import "strconv"

// DefaultPageSize is the fixed table page size.
const DefaultPageSize = 10

// Page is one window over a filtered, sorted collection.
type Page[T any] struct {
	Items      []T
	Number     int
	TotalPages int
	TotalItems int
	HasNext    bool
	HasPrev    bool
	Start      int // 1-based index of the first shown record
	End        int // 1-based index of the last shown record
}

// PageFromQuery parses a page query parameter, defaulting to 1.
func PageFromQuery(q string) int {
	n, err := strconv.Atoi(q)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate windows items onto the requested page. Out-of-range requests
// clamp to the nearest valid page, so shrinking the filtered set never lands
// on an empty page while records remain.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	p := Page[T]{
		Items:      items[start:end],
		Number:     page,
		TotalPages: totalPages,
		TotalItems: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
	if total > 0 {
		p.Start = start + 1
		p.End = end
	}
	return p
}
