package client

import (
	"encoding/json"
	"fmt"
)

// Book is one record from the Open Library search endpoint.
// Only Key and Title are reliably present; everything else may be missing.
type Book struct {
	Key              string      `json:"key"`
	Title            string      `json:"title"`
	AuthorNames      []string    `json:"author_name,omitempty"`
	FirstPublishYear int         `json:"first_publish_year,omitempty"`
	CoverID          int         `json:"cover_i,omitempty"`
	Language         []string    `json:"language,omitempty"`
	RatingsAverage   *float64    `json:"ratings_average,omitempty"`
	Subject          []string    `json:"subject,omitempty"`
	ISBN             []string    `json:"isbn,omitempty"`
	FirstSentence    []string    `json:"first_sentence,omitempty"`
	Description      Description `json:"description,omitempty"`
}

// SearchResponse represents the API response from the search endpoint
type SearchResponse struct {
	NumFound int    `json:"numFound"`
	Docs     []Book `json:"docs"`
}

// Description holds the loosely typed "description" attribute. The API sends
// either a plain string, a {"type", "value"} object, or a list of those.
type Description struct {
	// Raw is set when the attribute is a plain string or a single object
	Raw string
	// Entries holds the values of a list-shaped attribute, in order
	Entries []string
}

// IsZero reports whether no description was present
func (d Description) IsZero() bool {
	return d.Raw == "" && len(d.Entries) == 0
}

type textValue struct {
	Value string `json:"value"`
}

func (d *Description) UnmarshalJSON(data []byte) error {
	*d = Description{}

	if string(data) == "null" {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &d.Raw)
	case '{':
		var v textValue
		if err := json.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("failed to parse description object: %w", err)
		}
		d.Raw = v.Value
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("failed to parse description list: %w", err)
		}
		for _, item := range items {
			var entry Description
			if err := entry.UnmarshalJSON(item); err != nil {
				return err
			}
			d.Entries = append(d.Entries, entry.Raw)
		}
		return nil
	}

	// numbers and booleans carry no text
	return nil
}

func (d Description) MarshalJSON() ([]byte, error) {
	if len(d.Entries) > 0 {
		items := make([]textValue, len(d.Entries))
		for i, e := range d.Entries {
			items[i] = textValue{Value: e}
		}
		return json.Marshal(items)
	}
	if d.Raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.Raw)
}
