package client

import (
	"context"
	"net/url"
	"slices"

	khttp "github.com/kochabx/formkit/core/net/http"
	"github.com/kochabx/formkit/core/listing"
)

// SaleService covers /api/ventas.
type SaleService struct {
	c *Client
}

// List returns one page of sales and the filtered grand total. Filters:
// metodoPago, desde, hasta, minTotal, maxTotal.
func (s *SaleService) List(ctx context.Context, q url.Values) (SalesPage, error) {
	out := SalesPage{Ventas: listing.EmptyPage[Venta](pageOf(q))}
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"ventas"}, query: q, dest: &out})
	return out, err
}

func (s *SaleService) Create(ctx context.Context, req VentaRequest) (Venta, error) {
	var out Venta
	err := s.c.do(ctx, call{method: khttp.MethodPost, path: []any{"ventas"}, body: req, dest: &out})
	return out, err
}

func (s *SaleService) Update(ctx context.Context, id int64, req VentaRequest) (Venta, error) {
	var out Venta
	err := s.c.do(ctx, call{method: khttp.MethodPut, path: []any{"ventas", id}, body: req, dest: &out})
	return out, err
}

func (s *SaleService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, call{method: khttp.MethodDelete, path: []any{"ventas", id}})
}

// Details returns the lines of one sale.
func (s *SaleService) Details(ctx context.Context, id int64) ([]DetalleVenta, error) {
	out := []DetalleVenta{}
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"ventas", id, "detalles"}, dest: &out})
	return out, err
}

// SearchDetails pages through sale lines across sales. Filters:
// nombreProducto, desde, hasta. The backend sorts by venta.fecha,desc unless
// q says otherwise.
func (s *SaleService) SearchDetails(ctx context.Context, q url.Values) (listing.Page[DetalleVenta], error) {
	page := listing.EmptyPage[DetalleVenta](pageOf(q))
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"ventas", "detalles"}, query: q, dest: &page})
	return page, err
}

// DetailsOf loads the lines of several sales concurrently, keyed by sale id.
// Duplicate ids are fetched once.
func (s *SaleService) DetailsOf(ctx context.Context, ids []int64) (map[int64][]DetalleVenta, error) {
	unique := slices.Compact(slices.Sorted(slices.Values(ids)))
	lines := make([][]DetalleVenta, len(unique))

	err := s.c.fanOut(ctx, len(unique), func(ctx context.Context, i int) error {
		out, err := s.Details(ctx, unique[i])
		lines[i] = out
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make(map[int64][]DetalleVenta, len(unique))
	for i, id := range unique {
		out[id] = lines[i]
	}
	return out, nil
}
