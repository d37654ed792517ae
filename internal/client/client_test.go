package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HardMax71/ResuMariner-sub001/internal/query"
)

func newTestClient(url string) *Client {
	return New(&Options{BaseURL: url, Timeout: 2 * time.Second})
}

func TestFilterOptions_DecodesCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/filters", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"skills": [{"value": "Go", "count": 42}],
			"countries": [{"country": "Germany", "cities": ["Berlin"], "resume_count": 7}],
			"education_levels": [{"level": "Master", "statuses": ["completed"], "resume_count": 3}],
			"languages": [{"language": "English", "resume_count": 11}]
		}`))
	}))
	defer srv.Close()

	opts, err := newTestClient(srv.URL).FilterOptions(context.Background())
	require.NoError(t, err)
	require.Len(t, opts.Skills, 1)
	assert.Equal(t, "Go", opts.Skills[0].Value)
	assert.Equal(t, 42, opts.Skills[0].Count)
	require.Len(t, opts.Countries, 1)
	assert.Equal(t, []string{"Berlin"}, opts.Countries[0].Cities)
}

func TestFilterOptions_FailureReturnsEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	opts, err := newTestClient(srv.URL).FilterOptions(context.Background())
	assert.Error(t, err)
	assert.True(t, opts.IsEmpty())
}

func TestSearchSemantic_PostsBodyAndDecodesResponse(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/semantic", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{
			"results": [{"id": "c1", "name": "Ada", "score": 0.91,
				"matches": [{"text": "Go services", "score": 0.88, "source": "experience"}]}],
			"query": "engineer",
			"search_type": "semantic"
		}`))
	}))
	defer srv.Close()

	req := query.SemanticRequest{Query: "engineer", Limit: 10, MinScore: 0.3, MaxMatchesPerResult: 5}
	resp, err := newTestClient(srv.URL).SearchSemantic(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "engineer", gotBody["query"])
	assert.Equal(t, float64(10), gotBody["limit"])

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Ada", resp.Results[0].Name)
	assert.Equal(t, 0.91, resp.Results[0].Score)
	assert.Equal(t, "experience", resp.Results[0].Matches[0].Source)
	assert.Equal(t, "semantic", resp.SearchType)
	assert.NotEmpty(t, resp.RequestID)
}

func TestSearch_DispatchesByRequestShape(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"results": [], "query": "", "search_type": ""}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()

	_, err := c.Search(ctx, query.StructuredRequest{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "/search/structured", gotPath)

	_, err = c.Search(ctx, query.HybridRequest{
		Query: "x", VectorWeight: 0.7, GraphWeight: 0.3, Limit: 10, MaxMatchesPerResult: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, "/search/hybrid", gotPath)
}

func TestSearch_BackendErrorCarriesMessageVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail": "vector index unavailable"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SearchStructured(context.Background(), query.StructuredRequest{Limit: 10})

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusUnprocessableEntity, backendErr.Status)
	assert.Equal(t, "vector index unavailable", backendErr.Message)
}

func TestSearch_UnstructuredErrorBodyFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SearchStructured(context.Background(), query.StructuredRequest{Limit: 10})

	var backendErr *BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Contains(t, backendErr.Message, "502")
}

func TestSearch_ConnectionFailureIsNetworkError(t *testing.T) {
	// Port 1 refuses connections.
	c := newTestClient("http://127.0.0.1:1")

	_, err := c.SearchSemantic(context.Background(), query.SemanticRequest{
		Query: "engineer", Limit: 10, MinScore: 0.3, MaxMatchesPerResult: 5,
	})

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.NotNil(t, netErr.Unwrap())
}

func TestSearch_EachSubmissionGetsFreshRequestID(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("X-Request-ID"))
		_, _ = w.Write([]byte(`{"results": [], "query": "", "search_type": ""}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	ctx := context.Background()
	first, err := c.SearchStructured(ctx, query.StructuredRequest{Limit: 10})
	require.NoError(t, err)
	second, err := c.SearchStructured(ctx, query.StructuredRequest{Limit: 10})
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.NotEqual(t, seen[0], seen[1])
	assert.Equal(t, seen[0], first.RequestID)
	assert.Equal(t, seen[1], second.RequestID)
}
