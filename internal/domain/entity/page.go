package entity

// PageRequest is a zero-based page selector.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of an ordered result set.
type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages for the page size.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}

	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

// NewPage builds a page from already-sliced content.
func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
	}
}

// MapPage converts page content while keeping the paging metadata.
func MapPage[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, len(p.Content))
	for i, v := range p.Content {
		out[i] = fn(v)
	}

	return Page[R]{Content: out, Page: p.Page, Size: p.Size, TotalElements: p.TotalElements}
}
