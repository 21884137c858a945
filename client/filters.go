package client

import (
	"context"
	"net/url"

	"golang.org/x/sync/errgroup"

	khttp "github.com/kochabx/formkit/core/net/http"
	"github.com/kochabx/formkit/core/listing"
)

// FilterService covers /api/filtros.
type FilterService struct {
	c *Client
}

// Get returns the product names and categories offered as filter options.
func (s *FilterService) Get(ctx context.Context) (Filtros, error) {
	out := Filtros{NombresProductos: []ProductoNombre{}, CategoriasProductos: []string{}}
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"filtros"}, dest: &out})
	return out, err
}

// Catalog is what the product screen needs on first load.
type Catalog struct {
	Products listing.Page[Producto]
	Filters  Filtros
}

// LoadCatalog fetches the products page described by q and the filter options
// concurrently. The first failure cancels the other request and is returned.
func (c *Client) LoadCatalog(ctx context.Context, q url.Values) (Catalog, error) {
	var out Catalog

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page, err := c.Products.List(ctx, q)
		out.Products = page
		return err
	})
	g.Go(func() error {
		filters, err := c.Filters.Get(ctx)
		out.Filters = filters
		return err
	})

	if err := g.Wait(); err != nil {
		return Catalog{}, err
	}
	return out, nil
}
