package shared

import "time"

// PageQuery carries paging and ordering for list queries
type PageQuery struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// DefaultPageSize is used when a caller does not ask for a page size
const DefaultPageSize = 10

// MaxPageSize caps a single page
const MaxPageSize = 500

// Normalize applies defaults: page 1, DefaultPageSize, created_at desc
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	if q.OrderBy == "" {
		q.OrderBy = "created_at"
	}
	if q.OrderDir != "asc" {
		q.OrderDir = "desc"
	}
	return q
}

// Offset returns the row offset of the page
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](items []T, total int64, page, pageSize int) Paginated[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	if items == nil {
		items = make([]T, 0)
	}
	return Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// EndOfDayBound returns midnight after t's calendar day in t's location.
// Date-only upper bounds compare with < EndOfDayBound(to) so the whole end day matches.
func EndOfDayBound(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
