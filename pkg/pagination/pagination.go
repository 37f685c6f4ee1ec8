// Package pagination implements the offset pagination used by every list endpoint.
package pagination

import "math"

const (
	DefaultLimit = 20
	MaxLimit     = 100
	MaxPage      = 1_000_000 // (MaxPage-1)*MaxLimit fits in an int32
)

// Params is a requested page. Zero values mean "use the default".
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Meta describes the page that was returned.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Normalize clamps the limit to [1, MaxLimit] (DefaultLimit when unset) and the page to [1, MaxPage].
func (p Params) Normalize() Params {
	switch {
	case p.Limit == 0:
		p.Limit = DefaultLimit
	case p.Limit < 1:
		p.Limit = 1
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
	switch {
	case p.Page < 1:
		p.Page = 1
	case p.Page > MaxPage:
		p.Page = MaxPage
	}
	return p
}

// Offset is the number of rows to skip for the normalized page.
func (p Params) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// NewMeta builds the response metadata for a page of a result set of size total.
func NewMeta(p Params, total int64) Meta {
	n := p.Normalize()
	return Meta{
		Page:       n.Page,
		Limit:      n.Limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(n.Limit))),
	}
}
