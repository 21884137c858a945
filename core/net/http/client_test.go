package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kochabx/formkit/core/util/id"
	"github.com/kochabx/formkit/errors"
	"github.com/kochabx/formkit/metrics"
)

type testResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func TestClient_Request_GET(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, MethodGet, r.Method)
		assert.Equal(t, "0", r.URL.Query().Get("page"))
		assert.Equal(t, "x", r.URL.Query().Get("keep"))
		assert.NotEmpty(t, r.Header.Get(HeaderRequestID))

		w.Header().Set("Content-Type", ContentTypeJSON)
		_ = json.NewEncoder(w).Encode(testResponse{Message: "success", Status: 200})
	}))
	defer server.Close()

	client := New()
	var result testResponse

	resp, err := client.Get(server.URL+"?keep=x",
		WithQuery(url.Values{"page": {"0"}}),
		WithResponse(&result),
	)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "success", result.Message)
}

func TestClient_Request_POST_JSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, MethodPost, r.Method)
		assert.Equal(t, ContentTypeJSON, r.Header.Get("Content-Type"))
		assert.Equal(t, "fixed", r.Header.Get(HeaderRequestID))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cuaderno", body["nombre"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(testResponse{Message: "created", Status: 201})
	}))
	defer server.Close()

	var result testResponse
	_, err := New().Post(server.URL, map[string]any{"nombre": "Cuaderno"},
		WithHeader(map[string]string{HeaderRequestID: "fixed"}),
		WithResponse(&result),
	)
	require.NoError(t, err)
	assert.Equal(t, "created", result.Message)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	body := `{"errors":[{"field":"nombre","message":"must not be blank"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", ContentTypeJSON)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	var result testResponse
	resp, err := New().Put(server.URL+"/api/productos/1", map[string]any{}, WithResponse(&result))
	require.Error(t, err)

	httpErr, ok := errors.AsHTTP(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.GetCode())
	assert.JSONEq(t, body, string(httpErr.GetBody()))
	assert.Equal(t, "/api/productos/1", httpErr.GetMetadata()["path"])
	assert.NotEmpty(t, httpErr.GetMetadata()["request_id"])
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, result.Message)
}

func TestClient_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	result := testResponse{Message: "untouched"}
	_, err := New().Delete(server.URL, WithResponse(&result))
	require.NoError(t, err)
	assert.Equal(t, "untouched", result.Message)
}

func TestClient_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer server.Close()

	var result testResponse
	_, err := New().Patch(server.URL, nil, WithResponse(&result))
	require.Error(t, err)
	_, isHTTP := errors.AsHTTP(err)
	assert.False(t, isHTTP)
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := server.URL
	server.Close()

	_, err := New(WithTimeout(time.Second)).Get(addr)
	require.Error(t, err)
	_, isHTTP := errors.AsHTTP(err)
	assert.False(t, isHTTP)
}

func TestClient_RequestIDFromContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(HeaderRequestID))
	}))
	defer server.Close()

	_, err := New().Get(server.URL, WithContext(id.WithContext(context.Background(), "req-42")))
	require.NoError(t, err)
}

func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(id.WithContext(context.Background(), "req-7"))
	cancel()

	_, err := New().Get(server.URL, WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Metrics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()
	m, err := metrics.NewClient(reg)
	require.NoError(t, err)

	_, _ = New(WithMetrics(m)).Get(server.URL)

	n, err := testutil.GatherAndCount(reg, "formkit_http_client_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
