package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   string
}

type fakeES struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (f *fakeES) last() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Body: string(body)})
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/":
		_, _ = io.WriteString(w, `{"version":{"number":"9.0.0"},"tagline":"You Know, for Search"}`)
	case strings.HasSuffix(r.URL.Path, "/_search"):
		_, _ = io.WriteString(w, `{"hits":{"total":{"value":1},"hits":[{"_source":{"id":3,"name":"blue mug","price":4.5,"stock":7}}]}}`)
	case r.Method == http.MethodDelete && strings.HasSuffix(r.URL.Path, "/404"):
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"result":"not_found"}`)
	default:
		_, _ = io.WriteString(w, `{"result":"created"}`)
	}
}

func newTestIndex(t *testing.T) (*ProductIndex, *fakeES) {
	t.Helper()

	fake := &fakeES{}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	idx, err := NewProductIndex(Config{URL: srv.URL, Index: "products"})
	require.NoError(t, err)
	return idx, fake
}

func TestNewProductIndex_EmptyURL(t *testing.T) {
	_, err := NewProductIndex(Config{})
	require.Error(t, err)
}

func TestProductIndex_IndexProduct(t *testing.T) {
	idx, fake := newTestIndex(t)

	err := idx.IndexProduct(context.Background(), &models.Product{ID: 3, Name: "blue mug", Price: 4.5, Stock: 7})
	require.NoError(t, err)

	req := fake.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/products/_doc/3", req.Path)
	assert.Equal(t, "blue mug", gjson.Get(req.Body, "name").String())
	assert.Equal(t, 4.5, gjson.Get(req.Body, "price").Float())
}

func TestProductIndex_DeleteProduct(t *testing.T) {
	idx, fake := newTestIndex(t)

	require.NoError(t, idx.DeleteProduct(context.Background(), 3))
	assert.Equal(t, "/products/_doc/3", fake.last().Path)

	require.NoError(t, idx.DeleteProduct(context.Background(), 404), "missing documents are not an error")
}

func TestProductIndex_SearchProducts(t *testing.T) {
	idx, fake := newTestIndex(t)

	prods, err := idx.SearchProducts(context.Background(), "mug")
	require.NoError(t, err)
	require.Len(t, prods, 1)
	assert.EqualValues(t, 3, prods[0].ID)
	assert.Equal(t, "blue mug", prods[0].Name)
	assert.Equal(t, 7, prods[0].Stock)

	req := fake.last()
	assert.Equal(t, "/products/_search", req.Path)
	assert.Equal(t, "mug", gjson.Get(req.Body, "query.multi_match.query").String())
}
