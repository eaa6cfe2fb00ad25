package googlebooks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := NewClient("", 100)
	c.baseURL = server.URL
	return c
}

func TestSearchByISBN(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"volumeInfo": {
					"title": "The Pragmatic Programmer",
					"description": "From journeyman to master.",
					"authors": ["Andrew Hunt", "David Thomas"],
					"publishedDate": "1999-10-30",
					"industryIdentifiers": [
						{"type": "ISBN_10", "identifier": "020161622X"},
						{"type": "ISBN_13", "identifier": "9780201616224"}
					],
					"imageLinks": {"thumbnail": "http://covers.example.com/prag.jpg"}
				}
			}]
		}`))
	})

	v, err := c.SearchByISBN(context.Background(), "9780201616224")
	require.NoError(t, err)
	assert.Equal(t, "isbn:9780201616224", gotQuery)
	assert.Equal(t, "The Pragmatic Programmer", v.Title)
	assert.Equal(t, "9780201616224", v.ISBN())
	assert.Equal(t, 1999, v.PublishYear())
	assert.Equal(t, "Andrew Hunt & David Thomas", v.JoinedAuthors())
	assert.Equal(t, "http://covers.example.com/prag.jpg", v.ImageLinks.Thumbnail)
}

func TestSearchByTitle(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"title": "Dune"}}]}`))
	})

	v, err := c.SearchByTitle(context.Background(), "dune")
	require.NoError(t, err)
	assert.Equal(t, "intitle:dune", gotQuery)
	assert.Equal(t, "Dune", v.Title)
}

func TestSearchNoResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalItems": 0}`))
	})

	_, err := c.Search(context.Background(), "intitle:nothing")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.Search(context.Background(), "intitle:anything")
	assert.ErrorContains(t, err, "unexpected status code: 429")
}

func TestSearchSendsAPIKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"totalItems": 1, "items": [{"volumeInfo": {"title": "Keyed"}}]}`))
	}))
	defer server.Close()

	c := NewClient("secret-key", 100)
	c.baseURL = server.URL

	_, err := c.Search(context.Background(), "intitle:keyed")
	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
}

func TestVolumeISBNFallback(t *testing.T) {
	tests := []struct {
		name string
		ids  []struct {
			Type       string `json:"type"`
			Identifier string `json:"identifier"`
		}
		want string
	}{
		{
			name: "prefers ISBN-13",
			ids: []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			}{
				{Type: "ISBN_10", Identifier: "0441478123"},
				{Type: "ISBN_13", Identifier: "9780441478125"},
			},
			want: "9780441478125",
		},
		{
			name: "falls back to ISBN-10",
			ids: []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			}{
				{Type: "OTHER", Identifier: "OCLC:123"},
				{Type: "ISBN_10", Identifier: "0441478123"},
			},
			want: "0441478123",
		},
		{
			name: "empty when no ISBN at all",
			ids: []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			}{
				{Type: "OTHER", Identifier: "OCLC:123"},
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Volume{IndustryIdentifiers: tt.ids}
			assert.Equal(t, tt.want, v.ISBN())
		})
	}
}

func TestVolumePublishYear(t *testing.T) {
	assert.Equal(t, 2008, Volume{PublishedDate: "2008-08-01"}.PublishYear())
	assert.Equal(t, 1969, Volume{PublishedDate: "1969"}.PublishYear())
	assert.Equal(t, 0, Volume{PublishedDate: "unknown"}.PublishYear())
	assert.Equal(t, 0, Volume{}.PublishYear())
}
