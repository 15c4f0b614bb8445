package model

import "strconv"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
	maxPerPage     = 100
)

type Pagination struct {
	Page    int
	PerPage int
	Order   SortOrder
}

// NewPagination parses query string values into pagination parameters,
// clamping to page >= 1 and 1 <= perPage <= 100. Order defaults to desc.
func NewPagination(page, perPage, order string) Pagination {
	p := Pagination{
		Page:    defaultPage,
		PerPage: defaultPerPage,
		Order:   SortDesc,
	}

	if n, err := strconv.Atoi(page); err == nil && n >= 1 {
		p.Page = n
	}
	if n, err := strconv.Atoi(perPage); err == nil && n >= 1 {
		p.PerPage = n
		if p.PerPage > maxPerPage {
			p.PerPage = maxPerPage
		}
	}
	if order == string(SortAsc) {
		p.Order = SortAsc
	}

	return p
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}
