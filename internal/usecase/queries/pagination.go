package queries

import (
	"neighbiz/internal/pkg/errs"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrInvalidPage = errs.Validation("INVALID_PAGE", "page must be at least 1 and page_size between 1 and 100")

type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize fills zero values with defaults and rejects out-of-range values.
func (p PageRequest) Normalize() (PageRequest, error) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	if p.Page < 1 || p.PageSize < 1 || p.PageSize > MaxPageSize {
		return PageRequest{}, ErrInvalidPage
	}
	return p, nil
}

func (p PageRequest) Limit() int32 {
	return int32(p.PageSize) // #nosec G115 -- bounded by MaxPageSize
}

func (p PageRequest) Offset() int32 {
	return int32((p.Page - 1) * p.PageSize) // #nosec G115 -- page sizes are bounded
}

type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	HasNext  bool  `json:"has_next"`
}

func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		HasNext:  int64(req.Page*req.PageSize) < total,
	}
}
