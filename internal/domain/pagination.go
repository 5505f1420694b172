package domain

// PaginatedResult wraps a page of list results.
type PaginatedResult[T any] struct {
	Results    []T   `json:"results"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ClampPage normalizes 1-indexed page/limit query values: page floors at 1,
// limit falls back to def and is capped at max. Out-of-range values are
// silently clamped, never rejected.
func ClampPage(page, limit, def, max int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return page, limit
}

// NewPaginatedResult computes totalPages from the clamped limit.
func NewPaginatedResult[T any](results []T, total int64, page, limit int) *PaginatedResult[T] {
	if results == nil {
		results = []T{}
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &PaginatedResult[T]{
		Results:    results,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
