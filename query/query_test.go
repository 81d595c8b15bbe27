package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	for _, field := range Fields {
		t.Run(string(field), func(t *testing.T) {
			d, ok := Build("dune", field)
			require.True(t, ok)

			assert.Equal(t, SearchPath, d.Path)
			assert.Equal(t, "dune", d.Params.Get(string(field)))
			assert.Equal(t, "key,title,author_name,first_publish_year,cover_i,language,ratings_average,subject", d.Params.Get("fields"))
			assert.Equal(t, "12", d.Params.Get("limit"))
			assert.Equal(t, Query{Term: "dune", Field: field}, d.Query)

			// exactly one of the field parameters is present
			count := 0
			for _, f := range Fields {
				if d.Params.Has(string(f)) {
					count++
				}
			}
			assert.Equal(t, 1, count)
			assert.Len(t, d.Params, 3)
		})
	}
}

func TestBuildNoOp(t *testing.T) {
	tests := []struct {
		name  string
		term  string
		field Field
	}{
		{"empty term", "", Title},
		{"spaces", "   ", Author},
		{"tabs and newlines", "\t\n ", Subject},
		{"unknown field", "dune", Field("isbn")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Build(tt.term, tt.field)
			assert.False(t, ok)
			assert.Equal(t, Descriptor{}, d)
		})
	}
}

func TestBuildKeepsTermAsTyped(t *testing.T) {
	d, ok := Build("  the hobbit ", Title)
	require.True(t, ok)
	assert.Equal(t, "  the hobbit ", d.Params.Get("title"))
}

func TestDescriptorURL(t *testing.T) {
	d, ok := Build("ursula le guin", Author)
	require.True(t, ok)

	raw := d.URL("https://openlibrary.org/")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "openlibrary.org", u.Host)
	assert.Equal(t, "/search.json", u.Path)
	assert.Equal(t, "ursula le guin", u.Query().Get("author"))
	assert.Equal(t, "12", u.Query().Get("limit"))
}

func TestParseField(t *testing.T) {
	f, err := ParseField(" Author ")
	assert.NoError(t, err)
	assert.Equal(t, Author, f)

	_, err = ParseField("publisher")
	assert.Error(t, err)
}

func TestFieldNextAndLabel(t *testing.T) {
	assert.Equal(t, Author, Title.Next())
	assert.Equal(t, Subject, Author.Next())
	assert.Equal(t, Title, Subject.Next())
	assert.Equal(t, Title, Field("bogus").Next())
	assert.Equal(t, "Subject", Subject.Label())
}
