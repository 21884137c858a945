package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/kochabx/formkit/core/util/id"
	"github.com/kochabx/formkit/errors"
	"github.com/kochabx/formkit/metrics"
)

const (
	// Buffer pool constants
	defaultBufferSize = 4096
	maxBufferSize     = 1024 * 1024 // 1MB
)

// Client is a JSON HTTP client with pooled request options and buffers.
// Non-2xx responses are returned as *errors.Error carrying the raw body.
type Client struct {
	client         *http.Client
	metrics        *metrics.Client
	requestOptPool sync.Pool
	bufferPool     sync.Pool
}

// Option configures the HTTP client
type Option func(*Client)

// WithClient sets a custom HTTP client
func WithClient(client *http.Client) Option {
	return func(h *Client) {
		if client != nil {
			h.client = client
		}
	}
}

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return func(h *Client) {
		h.client.Timeout = d
	}
}

// WithMetrics records request counts and latency.
func WithMetrics(m *metrics.Client) Option {
	return func(h *Client) {
		h.metrics = m
	}
}

// New creates a new HTTP client with object pooling
func New(opts ...Option) *Client {
	h := &Client{
		client: &http.Client{},
		requestOptPool: sync.Pool{
			New: func() any {
				return &RequestOption{
					header: make(map[string]string, 8),
				}
			},
		},
		bufferPool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, defaultBufferSize))
			},
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RequestOption holds options for individual HTTP requests
type RequestOption struct {
	ctx      context.Context
	header   map[string]string
	query    url.Values
	response any
}

// WithContext sets a custom context for the request
func WithContext(ctx context.Context) func(*RequestOption) {
	return func(opt *RequestOption) {
		opt.ctx = ctx
	}
}

// WithHeader sets multiple headers for the request
func WithHeader(header map[string]string) func(*RequestOption) {
	return func(opt *RequestOption) {
		maps.Copy(opt.header, header)
	}
}

// WithQuery merges values into the request URL's query string
func WithQuery(values url.Values) func(*RequestOption) {
	return func(opt *RequestOption) {
		if opt.query == nil {
			opt.query = make(url.Values, len(values))
		}
		for k, v := range values {
			opt.query[k] = append(opt.query[k], v...)
		}
	}
}

// WithResponse sets the response target object for automatic unmarshaling.
// A 204 or empty body leaves the target untouched.
func WithResponse(response any) func(*RequestOption) {
	return func(opt *RequestOption) {
		opt.response = response
	}
}

// reset clears the option for reuse
func (opt *RequestOption) reset() {
	opt.ctx = nil
	clear(opt.header)
	opt.header["Content-Type"] = ContentTypeJSON
	opt.header["Accept"] = ContentTypeJSON
	opt.query = nil
	opt.response = nil
}

// Request sends an HTTP request with the specified method, URL, and body.
// The returned response body has already been read and may be read again.
func (cli *Client) Request(method, rawURL string, body any, opts ...func(*RequestOption)) (*http.Response, error) {
	opt := cli.getRequestOption()
	defer cli.putRequestOption(opt)

	for _, o := range opts {
		o(opt)
	}

	target, err := withQuery(rawURL, opt.query)
	if err != nil {
		return nil, err
	}

	ctx := opt.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	req, err := cli.createRequest(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	cli.setRequestHeaders(req, opt.header)
	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, id.FromContextOrNew(ctx))
	}

	start := time.Now()
	resp, err := cli.client.Do(req)
	if err != nil {
		cli.metrics.Observe(method, 0, time.Since(start))
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}
	cli.metrics.Observe(method, resp.StatusCode, time.Since(start))

	return cli.processResponse(req, resp, opt.response)
}

// withQuery appends values to rawURL's existing query
func withQuery(rawURL string, values url.Values) (string, error) {
	if len(values) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	q := u.Query()
	for k, v := range values {
		for _, s := range v {
			q.Add(k, s)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// getRequestOption retrieves a RequestOption from the pool
func (cli *Client) getRequestOption() *RequestOption {
	opt := cli.requestOptPool.Get().(*RequestOption)
	opt.reset()
	return opt
}

// putRequestOption returns a RequestOption to the pool
func (cli *Client) putRequestOption(opt *RequestOption) {
	cli.requestOptPool.Put(opt)
}

// createRequest creates an HTTP request with the appropriate body
func (cli *Client) createRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	switch v := body.(type) {
	case nil:
		return http.NewRequestWithContext(ctx, method, url, nil)
	case io.Reader:
		return http.NewRequestWithContext(ctx, method, url, v)
	default:
		return cli.createJSONRequest(ctx, method, url, v)
	}
}

// createJSONRequest creates an HTTP request with JSON body
func (cli *Client) createJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	buf := cli.getBuffer()
	defer cli.putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	// the pooled buffer is reused once this returns
	payload := bytes.Clone(buf.Bytes())
	return http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
}

// setRequestHeaders sets headers on the HTTP request
func (cli *Client) setRequestHeaders(req *http.Request, headers map[string]string) {
	for k, v := range headers {
		req.Header.Set(k, v)
	}
}

// getBuffer retrieves a buffer from the pool
func (cli *Client) getBuffer() *bytes.Buffer {
	buf := cli.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns a buffer to the pool, with size check to prevent memory leaks
func (cli *Client) putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxBufferSize {
		cli.bufferPool.Put(buf)
	}
}

// processResponse reads the body, maps non-2xx statuses to *errors.Error and
// decodes successful bodies into dest.
func (cli *Client) processResponse(req *http.Request, resp *http.Response, dest any) (*http.Response, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", req.Method, req.URL, err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, errors.FromResponse(resp.StatusCode, body).WithMetadata(map[string]string{
			"method":     req.Method,
			"path":       req.URL.Path,
			"request_id": req.Header.Get(HeaderRequestID),
		})
	}

	if dest == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(body)) == 0 {
		return resp, nil
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return resp, fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
	}

	return resp, nil
}

// Convenience methods for common HTTP operations

// Get performs a GET request
func (cli *Client) Get(url string, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(MethodGet, url, nil, opts...)
}

// Post performs a POST request with JSON body
func (cli *Client) Post(url string, body any, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(MethodPost, url, body, opts...)
}

// Put performs a PUT request with JSON body
func (cli *Client) Put(url string, body any, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(MethodPut, url, body, opts...)
}

// Delete performs a DELETE request
func (cli *Client) Delete(url string, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(MethodDelete, url, nil, opts...)
}

// Patch performs a PATCH request with JSON body
func (cli *Client) Patch(url string, body any, opts ...func(*RequestOption)) (*http.Response, error) {
	return cli.Request(MethodPatch, url, body, opts...)
}
