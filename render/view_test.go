package render

import (
	"testing"

	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/query"
	"github.com/hsbacot/bookfinder/search"
	"github.com/stretchr/testify/assert"
)

var dune = query.Query{Term: "dune", Field: query.Title}

func TestViewFor(t *testing.T) {
	tests := []struct {
		name  string
		state search.State
		want  View
	}{
		{"idle", search.Idle{}, ViewIdle},
		{"loading", search.Loading{Query: dune, Seq: 1}, ViewLoading},
		{"failed", search.Failed{Query: dune, Message: "boom"}, ViewError},
		{"loaded empty", search.Loaded{Query: dune, Results: []client.Book{}}, ViewEmpty},
		{"loaded", search.Loaded{Query: dune, Results: []client.Book{{Key: "/a", Title: "A"}}}, ViewGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ViewFor(tt.state))
		})
	}
}

func TestBodyViews(t *testing.T) {
	assert.Contains(t, Body(search.Loading{Query: dune}, nil, "⣾", 120, -1), "Searching for books...")

	errBody := Body(search.Failed{Query: dune, Message: search.FetchFailedMessage}, nil, "", 120, -1)
	assert.Contains(t, errBody, "Error loading books")
	assert.Contains(t, errBody, search.FetchFailedMessage)
	assert.Contains(t, errBody, "Try Again")
	assert.NotContains(t, errBody, "No books found")

	empty := Body(search.Loaded{Query: dune, Results: []client.Book{}}, nil, "", 120, -1)
	assert.Contains(t, empty, "No books found")
	assert.Contains(t, empty, "Show Bestsellers")
	assert.NotContains(t, empty, "Error loading books")

	assert.NotContains(t, Body(search.Idle{}, nil, "", 120, -1), "No books found")
}

func TestGridRendersEveryCard(t *testing.T) {
	books := []client.Book{
		{Key: "/works/OL1W", Title: "Dune"},
		{Key: "/works/OL2W", Title: "Children of Dune", AuthorNames: []string{"Frank Herbert"}},
	}
	state := search.Loaded{Query: dune, Results: books}
	out := Body(state, NewCards(books, DefaultLinks()), "", 120, 0)

	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Children of Dune")
	assert.Contains(t, out, "By Unknown Author")
	assert.Contains(t, out, "By Frank Herbert")
	assert.Contains(t, out, "N/A ★")
	assert.NotContains(t, out, "No books found")
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Columns(0))
	assert.Equal(t, 1, Columns(60))
	assert.Equal(t, 2, Columns(90))
	assert.Equal(t, 3, Columns(500))
}

func TestBadge(t *testing.T) {
	assert.Empty(t, Badge(search.Idle{}))
	assert.Empty(t, Badge(search.Loaded{Results: []client.Book{}}))
	assert.Contains(t, Badge(search.Loaded{Results: []client.Book{{Title: "A"}}}), "1 result")

	many := Badge(search.Loaded{Results: make([]client.Book, 12), NumFound: 1234})
	assert.Contains(t, many, "12 results of 1,234")
}

func TestDetail(t *testing.T) {
	c := NewCard(client.Book{Key: "/works/OL1W", Title: "Dune", ISBN: []string{"123"}}, DefaultLinks())
	out := Detail(c)
	assert.Contains(t, out, "https://openlibrary.org/works/OL1W")
	assert.Contains(t, out, "https://www.amazon.com/s?k=123")
}
