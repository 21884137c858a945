package client

import (
	"context"
	"net/url"
	"strings"

	khttp "github.com/kochabx/formkit/core/net/http"
	"github.com/kochabx/formkit/core/listing"
)

// MovementService covers /api/movimientos.
type MovementService struct {
	c *Client
}

// List returns one page of movements. Filters: productoId, tipo, desde, hasta.
func (s *MovementService) List(ctx context.Context, q url.Values) (listing.Page[Movimiento], error) {
	page := listing.EmptyPage[Movimiento](pageOf(q))
	err := s.c.do(ctx, call{method: khttp.MethodGet, path: []any{"movimientos"}, query: q, dest: &page})
	return page, err
}

func (s *MovementService) Update(ctx context.Context, id int64, req MovimientoUpdateRequest) (Movimiento, error) {
	var out Movimiento
	err := s.c.do(ctx, call{method: khttp.MethodPut, path: []any{"movimientos", id}, body: req, dest: &out})
	return out, err
}

// Delete reverts a movement. A non-blank note is sent as ?observacion=.
func (s *MovementService) Delete(ctx context.Context, id int64, note string) (Movimiento, error) {
	var q url.Values
	if note = strings.TrimSpace(note); note != "" {
		q = url.Values{"observacion": {note}}
	}
	var out Movimiento
	err := s.c.do(ctx, call{method: khttp.MethodDelete, path: []any{"movimientos", id}, query: q, dest: &out})
	return out, err
}
