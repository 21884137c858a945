package listing

import (
	"fmt"
	"maps"
	"net/url"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// DefaultPageSize is used when a controller is created with a non-positive size.
const DefaultPageSize = 10

// DateLayout is how time filters are sent to the backend.
const DateLayout = time.DateOnly

// Controller keeps the page, sort and filter state of a listing.
// It is not safe for concurrent use.
type Controller struct {
	page     int
	size     int
	sort     Sort
	initial  Sort
	filters  map[string]any
	defaults map[string]any
}

// Option configures a Controller.
type Option func(*Controller)

// WithSort sets the initial sort.
func WithSort(column string, dir Direction) Option {
	return func(c *Controller) {
		c.sort = Sort{Column: column, Direction: dir}
		c.initial = c.sort
	}
}

// WithFilter declares a filter and its default value.
func WithFilter(name string, def any) Option {
	return func(c *Controller) {
		c.defaults[name] = def
		c.filters[name] = def
	}
}

// NewController creates a controller on page 0.
func NewController(size int, opts ...Option) *Controller {
	if size <= 0 {
		size = DefaultPageSize
	}
	c := &Controller{
		size:     size,
		filters:  make(map[string]any),
		defaults: make(map[string]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Page() int { return c.page }

func (c *Controller) Size() int { return c.size }

func (c *Controller) Sort() Sort { return c.sort }

// SortBy sorts by column. Choosing the current column flips the direction;
// a new column starts ascending. The page is kept.
func (c *Controller) SortBy(column string) {
	if c.sort.Column == column {
		c.sort.Direction = c.sort.Direction.Toggle()
		return
	}
	c.sort = Sort{Column: column, Direction: Asc}
}

// ChangePage moves to index with the given page size. Negative indices clamp
// to 0 and non-positive sizes keep the current size.
func (c *Controller) ChangePage(index, size int) {
	c.page = max(index, 0)
	if size > 0 {
		c.size = size
	}
}

// SetFilter stores a filter value without reloading.
func (c *Controller) SetFilter(name string, value any) {
	c.filters[name] = value
}

// Filter returns the current value of name.
func (c *Controller) Filter(name string) any {
	return c.filters[name]
}

// ApplyFilters goes back to the first page.
func (c *Controller) ApplyFilters() {
	c.page = 0
}

// ClearFilters restores the declared defaults, the initial sort and page 0.
func (c *Controller) ClearFilters() {
	c.filters = maps.Clone(c.defaults)
	if c.filters == nil {
		c.filters = make(map[string]any)
	}
	c.sort = c.initial
	c.page = 0
}

// Query encodes the state as page, size, sort and every non-empty filter.
func (c *Controller) Query() url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(c.page))
	q.Set("size", strconv.Itoa(c.size))
	if s := c.sort.String(); s != "" {
		q.Set("sort", s)
	}
	for _, name := range slices.Sorted(maps.Keys(c.filters)) {
		if v, ok := FormatValue(c.filters[name]); ok {
			q.Set(name, v)
		}
	}
	return q
}

// FormatValue renders a filter value for a query string. Nil values, blank
// strings and nil pointers are reported as absent.
func FormatValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		return FormatValue(rv.Elem().Interface())
	}

	switch x := v.(type) {
	case string:
		s := strings.TrimSpace(x)
		return s, s != ""
	case time.Time:
		if x.IsZero() {
			return "", false
		}
		return x.Format(DateLayout), true
	case fmt.Stringer:
		s := strings.TrimSpace(x.String())
		return s, s != ""
	}
	return fmt.Sprint(v), true
}
