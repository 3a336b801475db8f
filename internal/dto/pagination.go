package dto

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = 100000
)

// Pagination describes one page of a list response
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// PageRequest is a bounded page/limit pair
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest clamps client supplied values: 1 <= page <= MaxPage, 1 <= limit <= MaxPageSize.
func NewPageRequest(page, limit int) PageRequest {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return PageRequest{Page: page, Limit: limit}
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func NewPagination(p PageRequest, total int64) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Pagination{
		CurrentPage:  p.Page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
		HasNext:      p.Page < totalPages,
		HasPrev:      p.Page > 1,
	}
}
