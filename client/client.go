// Package client is a typed client for the papeleria REST API. Failed calls
// return *errors.Error values ready for the apierror reconciler.
package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	khttp "github.com/kochabx/formkit/core/net/http"
	"github.com/kochabx/formkit/core/validator"
	"github.com/kochabx/formkit/errors"
)

// Client talks to one backend.
type Client struct {
	http        *khttp.Client
	base        *khttp.URLBuilder
	validator   validator.Validator
	prevalidate bool
	concurrency int

	Products  *ProductService
	Movements *MovementService
	Sales     *SaleService
	Expenses  *ExpenseService
	Filters   *FilterService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport.
func WithHTTPClient(h *khttp.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithValidator sets the validator used by Validate and pre-validation.
func WithValidator(v validator.Validator) Option {
	return func(c *Client) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithPreValidation validates request bodies before sending them. Failures
// come back as a local 400 shaped like the backend's validation response.
func WithPreValidation() Option {
	return func(c *Client) {
		c.prevalidate = true
	}
}

// WithConcurrency bounds how many requests a fan-out call such as
// Sales.DetailsOf keeps in flight.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates a client for the backend at baseURL, e.g. http://localhost:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	base, err := khttp.FromURL(baseURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		http:        khttp.New(),
		base:        base.AppendPath("api"),
		validator:   validator.Validate,
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Products = &ProductService{c: c}
	c.Movements = &MovementService{c: c}
	c.Sales = &SaleService{c: c}
	c.Expenses = &ExpenseService{c: c}
	c.Filters = &FilterService{c: c}
	return c, nil
}

// Validate checks a request body against its validate tags.
func (c *Client) Validate(body any) error {
	return c.validator.Struct(body)
}

// URL returns the absolute address of an API resource.
func (c *Client) URL(segments ...any) string {
	return c.base.Clone().AppendPath(segments...).Build()
}

type call struct {
	method string
	path   []any
	query  url.Values
	body   any
	dest   any
}

func (c *Client) do(ctx context.Context, r call) error {
	if r.body != nil && c.prevalidate {
		if err := c.Validate(r.body); err != nil {
			return localBadRequest(err)
		}
	}

	opts := []func(*khttp.RequestOption){khttp.WithContext(ctx)}
	if len(r.query) > 0 {
		opts = append(opts, khttp.WithQuery(r.query))
	}
	if r.dest != nil {
		opts = append(opts, khttp.WithResponse(r.dest))
	}

	_, err := c.http.Request(r.method, c.URL(r.path...), r.body, opts...)
	return err
}

// localBadRequest wraps a validation failure as a 400 with the backend's body shape.
func localBadRequest(err error) error {
	if !validator.IsValidationError(err) {
		return err
	}
	body, mErr := json.Marshal(validator.ToPayload(err, ""))
	if mErr != nil {
		return err
	}
	return errors.BadRequest("request failed validation").WithBody(body).WithCause(err)
}

// pageOf reads page and size from q so an empty response can still be
// reported as the requested page.
func pageOf(q url.Values) (int, int) {
	page, _ := strconv.Atoi(q.Get("page"))
	size, _ := strconv.Atoi(q.Get("size"))
	return page, size
}
