package models

// Page is one page of a paginated collection
type Page[T any] struct {
	Items      []T `json:"items" yaml:"items"`
	Page       int `json:"page" yaml:"page"`
	PageSize   int `json:"pageSize" yaml:"pageSize"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
}

// TotalPages returns the number of pages given the page size
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 1
	}
	pages := (p.TotalCount + p.PageSize - 1) / p.PageSize
	if pages == 0 {
		return 1
	}
	return pages
}

// HasNext reports whether another page follows
func (p Page[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}
