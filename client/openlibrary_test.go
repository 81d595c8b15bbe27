package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hsbacot/bookfinder/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, term string, field query.Field) query.Descriptor {
	t.Helper()
	d, ok := query.Build(term, field)
	require.True(t, ok)
	return d
}

func TestSearch(t *testing.T) {
	var gotPath, gotTitle, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotTitle = r.URL.Query().Get("title")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 2, "docs": [
			{"key": "/works/OL1W", "title": "Dune", "author_name": ["Frank Herbert"], "cover_i": 42, "ratings_average": 4.25},
			{"key": "/works/OL2W", "title": "Dune Messiah"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithUserAgent("test-agent"))
	resp, err := c.Search(context.Background(), mustBuild(t, "dune", query.Title))
	require.NoError(t, err)

	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, "dune", gotTitle)
	assert.Equal(t, "test-agent", gotUA)
	assert.Equal(t, 2, resp.NumFound)
	require.Len(t, resp.Docs, 2)
	assert.Equal(t, "Dune", resp.Docs[0].Title)
	assert.Equal(t, []string{"Frank Herbert"}, resp.Docs[0].AuthorNames)
	assert.Equal(t, 42, resp.Docs[0].CoverID)
	require.NotNil(t, resp.Docs[0].RatingsAverage)
	assert.InDelta(t, 4.25, *resp.Docs[0].RatingsAverage, 0.0001)
	assert.Nil(t, resp.Docs[1].RatingsAverage)
}

func TestSearchMissingDocs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"numFound": 0}`))
	}))
	defer srv.Close()

	resp, err := NewClient(WithBaseURL(srv.URL)).Search(context.Background(), mustBuild(t, "zzz", query.Subject))
	require.NoError(t, err)
	assert.NotNil(t, resp.Docs)
	assert.Empty(t, resp.Docs)
}

func TestSearchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).Search(context.Background(), mustBuild(t, "dune", query.Title))
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Error(), "503")
}

func TestSearchMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(WithBaseURL(srv.URL)).Search(context.Background(), mustBuild(t, "dune", query.Title))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse search response")
}

func TestWithTimeoutLeavesCallerClientAlone(t *testing.T) {
	shared := &http.Client{Timeout: time.Minute}

	c := NewClient(WithHTTPClient(shared), WithTimeout(3*time.Second))
	assert.Equal(t, time.Minute, shared.Timeout)
	assert.Equal(t, 3*time.Second, c.httpClient.Timeout)
	assert.NotSame(t, shared, c.httpClient)
}

func TestSearchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(WithBaseURL(url), WithTimeout(time.Second)).Search(context.Background(), mustBuild(t, "dune", query.Title))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to make search request")
}

func TestDescriptionUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Description
	}{
		{"string", `"A desert planet."`, Description{Raw: "A desert planet."}},
		{"object", `{"type": "/type/text", "value": "Spice."}`, Description{Raw: "Spice."}},
		{"list", `[{"value": "First."}, "Second."]`, Description{Entries: []string{"First.", "Second."}}},
		{"null", `null`, Description{}},
		{"number", `7`, Description{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Description
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestBookDescriptionField(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"key": "/works/OL1W", "title": "Dune", "description": {"value": "Spice."}}`), &b))
	assert.Equal(t, "Spice.", b.Description.Raw)
	assert.False(t, b.Description.IsZero())
}
