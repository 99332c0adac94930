package processor

// PageWindow is the visible slice of a paginated collection together with
// the bounded set of page-number controls around the current page.
type PageWindow[T any] struct {
	Visible     []T
	PageNumbers []int
	TotalPages  int
}

// Window computes the page slice and page-number window for a filtered,
// ordered collection. The number window is centered on page with width
// displayLimit and shifted to stay within [1, totalPages] without
// shrinking below min(displayLimit, totalPages). Pure: identical inputs
// always yield identical output.
func Window[T any](items []T, page, pageSize, displayLimit int) PageWindow[T] {
	if pageSize <= 0 {
		return PageWindow[T]{}
	}

	totalPages := (len(items) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start < 0 {
		start = 0
	}
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	if end < start {
		end = start
	}

	return PageWindow[T]{
		Visible:     items[start:end],
		PageNumbers: pageNumbers(page, totalPages, displayLimit),
		TotalPages:  totalPages,
	}
}

func pageNumbers(page, totalPages, displayLimit int) []int {
	if totalPages <= 0 || displayLimit <= 0 {
		return nil
	}

	first := page - displayLimit/2
	if first < 1 {
		first = 1
	}
	last := first + displayLimit - 1
	if last > totalPages {
		last = totalPages
	}
	// The trailing clamp can leave a short window; pull the start back to
	// preserve the full width where the collection allows it.
	if last-first < displayLimit-1 {
		first = last - displayLimit + 1
		if first < 1 {
			first = 1
		}
	}

	numbers := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		numbers = append(numbers, p)
	}
	return numbers
}
