package client

import (
	"context"
	"net/url"

	khttp "github.com/kochabx/formkit/core/net/http"
	"github.com/kochabx/formkit/core/listing"
)

// ProductService covers /api/productos.
type ProductService struct {
	c *Client
}

// List returns one page of products. Filters: nombre, categoria, estado.
func (s *ProductService) List(ctx context.Context, q url.Values) (listing.Page[Producto], error) {
	page := listing.EmptyPage[Producto](pageOf(q))
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"productos"}, query: q, dest: &page})
	return page, err
}

func (s *ProductService) Create(ctx context.Context, req ProductoRequest) (Producto, error) {
	var out Producto
	err := s.c.do(ctx, call{method: khttp.MethodPost, path: []any{"productos"}, body: req, dest: &out})
	return out, err
}

func (s *ProductService) Update(ctx context.Context, id int64, req ProductoRequest) (Producto, error) {
	var out Producto
	err := s.c.do(ctx, call{method: khttp.MethodPut, path: []any{"productos", id}, body: req, dest: &out})
	return out, err
}

// ToggleStatus flips a product between active and inactive.
func (s *ProductService) ToggleStatus(ctx context.Context, id int64) (Producto, error) {
	var out Producto
	err := s.c.do(ctx, call{method: khttp.MethodPatch, path: []any{"productos", id, "estado"}, body: struct{}{}, dest: &out})
	return out, err
}

// AddStock registers an incoming movement for one product.
func (s *ProductService) AddStock(ctx context.Context, id int64, req EntradaRequest) (Producto, error) {
	var out Producto
	err := s.c.do(ctx, call{method: khttp.MethodPatch, path: []any{"productos", id, "agregar"}, body: req, dest: &out})
	return out, err
}

// AddStockBulk registers incoming movements for several products.
func (s *ProductService) AddStockBulk(ctx context.Context, req EntradaMasivaRequest) ([]Producto, error) {
	out := []Producto{}
	err := s.c.do(ctx, call{method: khttp.MethodPatch, path: []any{"productos", "agregar-masivo"}, body: req, dest: &out})
	return out, err
}
