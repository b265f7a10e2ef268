// Package pagination implements cursor-less page/limit/skip paging.
//
// Ties between equal sort keys are left to the store's natural iteration
// order; under concurrent writes that order is not guaranteed stable across
// pages. This is a documented property of the API, not a bug to paper over.
package pagination

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params is a validated set of listing parameters. Validation happens at the
// handler boundary before Params is constructed.
type Params struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Skip is the number of documents to pass over before the requested page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Desc reports whether the sort direction is descending.
func (p Params) Desc() bool {
	return p.SortOrder != OrderAsc
}

// TotalPages is ceil(total/limit); 0 when the collection is empty.
// A page past the end is not clamped: it yields an empty item set while
// total stays unchanged.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
