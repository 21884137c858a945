package listing

import (
	"context"
)

// Page is one page of a Spring-style paginated response.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
}

// EmptyPage is what a 204 response stands for.
func EmptyPage[T any](number, size int) Page[T] {
	return Page[T]{Content: []T{}, Number: number, Size: size}
}

// Table holds a controller and the rows it last loaded.
type Table[T any] struct {
	*Controller
	rows  []T
	total int64
}

// NewTable wraps c.
func NewTable[T any](c *Controller) *Table[T] {
	return &Table[T]{Controller: c}
}

func (t *Table[T]) Rows() []T { return t.rows }

func (t *Table[T]) Total() int64 { return t.total }

// Load fetches the current page. On failure rows and total are cleared and
// the error is returned for the caller to report.
func (t *Table[T]) Load(ctx context.Context, fetch func(context.Context, *Controller) (Page[T], error)) error {
	page, err := fetch(ctx, t.Controller)
	if err != nil {
		t.rows = nil
		t.total = 0
		return err
	}
	t.rows = page.Content
	t.total = page.TotalElements
	return nil
}
