package client

import (
	"context"
	"net/url"

	khttp "github.com/kochabx/formkit/core/net/http"
)

// ExpenseService covers /api/gastos.
type ExpenseService struct {
	c *Client
}

// List returns every expense matching q. Filters: nombre, desde, hasta.
func (s *ExpenseService) List(ctx context.Context, q url.Values) ([]Gasto, error) {
	out := []Gasto{}
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"gastos"}, query: q, dest: &out})
	return out, err
}

func (s *ExpenseService) Get(ctx context.Context, id int64) (Gasto, error) {
	var out Gasto
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"gastos", id}, dest: &out})
	return out, err
}

func (s *ExpenseService) Create(ctx context.Context, req GastoRequest) (Gasto, error) {
	var out Gasto
	err := s.c.do(ctx, call{method: khttp.MethodPost, path: []any{"gastos"}, body: req, dest: &out})
	return out, err
}

func (s *ExpenseService) Update(ctx context.Context, id int64, req GastoRequest) (Gasto, error) {
	var out Gasto
	err := s.c.do(ctx, call{method: khttp.MethodPut, path: []any{"gastos", id}, body: req, dest: &out})
	return out, err
}

func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, call{method: khttp.MethodDelete, path: []any{"gastos", id}})
}
