package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type estado int

func (e estado) String() string {
	if e == 1 {
		return "ACTIVO"
	}
	return ""
}

func TestDirection(t *testing.T) {
	assert.Equal(t, Desc, Asc.Toggle())
	assert.Equal(t, Asc, Desc.Toggle())
	assert.Equal(t, Desc, ParseDirection(" DESC "))
	assert.Equal(t, Asc, ParseDirection("sideways"))
}

func TestSortString(t *testing.T) {
	assert.Equal(t, "venta.fecha,desc", Sort{Column: "venta.fecha", Direction: Desc}.String())
	assert.Equal(t, "nombre,asc", Sort{Column: "nombre"}.String())
	assert.Equal(t, "", Sort{}.String())
	assert.Equal(t, Sort{Column: "fecha", Direction: Desc}, ParseSort("fecha,desc"))
}

func TestSortBy(t *testing.T) {
	c := NewController(10, WithSort("nombre", Asc))
	c.ChangePage(3, 0)

	c.SortBy("nombre")
	assert.Equal(t, Sort{Column: "nombre", Direction: Desc}, c.Sort())

	c.SortBy("nombre")
	assert.Equal(t, Asc, c.Sort().Direction)

	c.SortBy("stock")
	assert.Equal(t, Sort{Column: "stock", Direction: Asc}, c.Sort())
	assert.Equal(t, 3, c.Page(), "sorting keeps the page")
}

func TestPaging(t *testing.T) {
	c := NewController(0)
	assert.Equal(t, DefaultPageSize, c.Size())

	c.ChangePage(2, 25)
	assert.Equal(t, 2, c.Page())
	assert.Equal(t, 25, c.Size())

	c.ChangePage(-4, -1)
	assert.Equal(t, 0, c.Page())
	assert.Equal(t, 25, c.Size())
}

func TestFilters(t *testing.T) {
	c := NewController(10,
		WithSort("fecha", Desc),
		WithFilter("estado", "ACTIVO"),
		WithFilter("nombre", ""),
	)
	c.ChangePage(4, 0)
	c.SortBy("total")
	c.SetFilter("nombre", "lápiz")
	c.SetFilter("estado", "")

	c.ApplyFilters()
	assert.Equal(t, 0, c.Page())
	assert.Equal(t, "lápiz", c.Filter("nombre"))

	c.ChangePage(2, 0)
	c.ClearFilters()
	assert.Equal(t, 0, c.Page())
	assert.Equal(t, "ACTIVO", c.Filter("estado"))
	assert.Equal(t, "", c.Filter("nombre"))
	assert.Equal(t, Sort{Column: "fecha", Direction: Desc}, c.Sort())
}

func TestQuery(t *testing.T) {
	var nilTime *time.Time
	desde := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
	minTotal := 10.5

	c := NewController(20, WithSort("venta.fecha", Desc))
	c.SetFilter("metodoPago", "  ")
	c.SetFilter("desde", desde)
	c.SetFilter("hasta", nilTime)
	c.SetFilter("minTotal", &minTotal)
	c.SetFilter("categoria", nil)
	c.SetFilter("estado", estado(1))
	c.SetFilter("tipo", estado(0))
	c.ChangePage(1, 0)

	q := c.Query()
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "20", q.Get("size"))
	assert.Equal(t, "venta.fecha,desc", q.Get("sort"))
	assert.Equal(t, "2024-03-09", q.Get("desde"))
	assert.Equal(t, "10.5", q.Get("minTotal"))
	assert.Equal(t, "ACTIVO", q.Get("estado"))
	for _, absent := range []string{"metodoPago", "hasta", "categoria", "tipo"} {
		assert.False(t, q.Has(absent), absent)
	}

	hasta := desde.AddDate(0, 0, 1)
	v, ok := FormatValue(&hasta)
	assert.True(t, ok)
	assert.Equal(t, "2024-03-10", v)

	unsorted := NewController(5).Query()
	assert.False(t, unsorted.Has("sort"))
}

func TestEmptyPage(t *testing.T) {
	p := EmptyPage[string](3, 10)
	assert.Equal(t, []string{}, p.Content)
	assert.Zero(t, p.TotalElements)
	assert.Equal(t, 3, p.Number)
	assert.Equal(t, 10, p.Size)
}

func TestTableLoad(t *testing.T) {
	table := NewTable[string](NewController(2))

	err := table.Load(context.Background(), func(_ context.Context, c *Controller) (Page[string], error) {
		assert.Equal(t, "2", c.Query().Get("size"))
		return Page[string]{Content: []string{"a", "b"}, TotalElements: 7}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, table.Rows())
	assert.Equal(t, int64(7), table.Total())

	boom := errors.New("boom")
	err = table.Load(context.Background(), func(context.Context, *Controller) (Page[string], error) {
		return Page[string]{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, table.Rows())
	assert.Zero(t, table.Total())
}
