package handler

// MessagesPage is the response shape for a paginated message listing. The
// slice is in chronological order; paging walks the history oldest-first.
type MessagesPage struct {
	Messages    []MessageResponse `json:"messages"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// computeTotalPages returns the number of pages needed to cover totalItems at
// the given page size.
func computeTotalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		limit = 1
	}
	return (int(totalItems) + limit - 1) / limit
}
