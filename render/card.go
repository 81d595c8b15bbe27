package render

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/hsbacot/bookfinder/client"
	"github.com/hsbacot/bookfinder/cover"
)

const (
	DefaultCatalogURL = "https://openlibrary.org"
	DefaultStoreURL   = "https://www.amazon.com/s"

	unknownAuthor = "Unknown Author"
	notAvailable  = "N/A"
	maxTags       = 3
	maxTagLength  = 15
)

// Links holds the hosts used to build card URLs
type Links struct {
	CoverBaseURL   string
	CatalogBaseURL string
	StoreSearchURL string
}

// DefaultLinks points at Open Library and Amazon
func DefaultLinks() Links {
	return Links{
		CoverBaseURL:   cover.DefaultBaseURL,
		CatalogBaseURL: DefaultCatalogURL,
		StoreSearchURL: DefaultStoreURL,
	}
}

// Card is the display form of one record, with every fallback applied
type Card struct {
	Key         string      `json:"key"`
	Cover       cover.Image `json:"cover"`
	Title       string      `json:"title"`
	Authors     string      `json:"authors"`
	Year        string      `json:"year"`
	Rating      string      `json:"rating"`
	Language    string      `json:"language,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Description string      `json:"description"`
	DetailURL   string      `json:"detail_url"`
	StoreURL    string      `json:"store_url,omitempty"`
}

// NewCard maps a record to its card
func NewCard(b client.Book, links Links) Card {
	card := Card{
		Key:         b.Key,
		Cover:       cover.NewImage(links.CoverBaseURL, b.CoverID),
		Title:       b.Title,
		Authors:     unknownAuthor,
		Year:        notAvailable,
		Rating:      notAvailable,
		Description: describe(b),
		DetailURL:   strings.TrimRight(links.CatalogBaseURL, "/") + b.Key,
	}

	if authors := strings.Join(b.AuthorNames, ", "); authors != "" {
		card.Authors = authors
	}
	if b.FirstPublishYear != 0 {
		card.Year = fmt.Sprintf("%d", b.FirstPublishYear)
	}
	if b.RatingsAverage != nil {
		card.Rating = fmt.Sprintf("%.1f", *b.RatingsAverage)
	}
	if len(b.Language) > 0 {
		card.Language = strings.ToUpper(b.Language[0])
	}

	for i, subject := range b.Subject {
		if i == maxTags {
			break
		}
		card.Tags = append(card.Tags, truncateTag(subject))
	}

	// isbn is not in query.ResponseFields, so live results carry no store link
	if len(b.ISBN) > 0 && b.ISBN[0] != "" {
		card.StoreURL = links.StoreSearchURL + "?k=" + url.QueryEscape(b.ISBN[0])
	}

	return card
}

// NewCards maps a result set to cards, preserving order
func NewCards(books []client.Book, links Links) []Card {
	cards := make([]Card, len(books))
	for i, b := range books {
		cards[i] = NewCard(b, links)
	}
	return cards
}

// Byline is the author line as displayed
func (c Card) Byline() string {
	return "By " + c.Authors
}

// RatingLabel is the rating as displayed
func (c Card) RatingLabel() string {
	return c.Rating + " ★"
}

// Meta is the "year • rating • language" line
func (c Card) Meta() string {
	parts := []string{c.Year, c.RatingLabel()}
	if c.Language != "" {
		parts = append(parts, c.Language)
	}
	return strings.Join(parts, " • ")
}

func truncateTag(tag string) string {
	r := []rune(tag)
	if len(r) > maxTagLength {
		return string(r[:maxTagLength]) + "..."
	}
	return tag
}
