package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// SearchPath is the Open Library search endpoint, relative to the API base URL.
	SearchPath = "/search.json"

	// ResultLimit is the fixed page size requested from the API.
	ResultLimit = 12
)

// ResponseFields is the set of record attributes requested from the API.
var ResponseFields = []string{
	"key",
	"title",
	"author_name",
	"first_publish_year",
	"cover_i",
	"language",
	"ratings_average",
	"subject",
}

// Field selects which record attribute the search term is matched against
type Field string

const (
	Title   Field = "title"
	Author  Field = "author"
	Subject Field = "subject"
)

// Fields lists the searchable fields in display order
var Fields = []Field{Title, Author, Subject}

// Valid reports whether f is one of the known search fields
func (f Field) Valid() bool {
	switch f {
	case Title, Author, Subject:
		return true
	}
	return false
}

// Label returns the capitalized name used in menus
func (f Field) Label() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Next returns the field after f, wrapping around
func (f Field) Next() Field {
	for i, candidate := range Fields {
		if candidate == f {
			return Fields[(i+1)%len(Fields)]
		}
	}
	return Title
}

// ParseField converts user input (any case, surrounding spaces allowed) to a Field
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("unknown search field %q (expected title, author or subject)", s)
	}
	return f, nil
}

// Query is one submitted search
type Query struct {
	Term  string
	Field Field
}

func (q Query) String() string {
	return fmt.Sprintf("%s:%q", q.Field, q.Term)
}

// Descriptor is a fully formed outbound search request
type Descriptor struct {
	Query  Query
	Path   string
	Params url.Values
}

// Build maps a term and field to a request descriptor.
// ok is false when the term is blank or the field unknown; no request may be issued then.
func Build(term string, field Field) (d Descriptor, ok bool) {
	if strings.TrimSpace(term) == "" || !field.Valid() {
		return Descriptor{}, false
	}

	params := url.Values{}
	params.Set(string(field), term)
	params.Set("fields", strings.Join(ResponseFields, ","))
	params.Set("limit", strconv.Itoa(ResultLimit))

	return Descriptor{
		Query:  Query{Term: term, Field: field},
		Path:   SearchPath,
		Params: params,
	}, true
}

// URL returns the absolute request URL against the given API base
func (d Descriptor) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + d.Path + "?" + d.Params.Encode()
}
