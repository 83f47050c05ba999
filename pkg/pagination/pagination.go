package pagination

import "math"

// Params represents page-based pagination input
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Default returns default pagination values
func Default() *Params {
	return &Params{
		Page:  1,
		Limit: 10,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset calculates the slice offset for the current page
func (p *Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Result represents one page of a filtered, insertion-ordered sequence.
// Count is the number of items on this page; Total the size of the
// filtered sequence.
type Result[T any] struct {
	Items       []T   `json:"items"`
	Count       int   `json:"count"`
	Total       int64 `json:"total"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

// NewResult creates a paginated result for the given page of items
func NewResult[T any](items []T, params *Params, total int64) *Result[T] {
	if items == nil {
		items = []T{}
	}
	return &Result[T]{
		Items:       items,
		Count:       len(items),
		Total:       total,
		CurrentPage: params.Page,
		TotalPages:  int(math.Ceil(float64(total) / float64(params.Limit))),
	}
}

// Slice applies the page window [(page-1)*limit, page*limit) to items.
// Out-of-range pages, including unvalidated ones below 1, yield the first
// page window or an empty slice rather than a panic.
func Slice[T any](items []T, params *Params) []T {
	start := params.Offset()
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
