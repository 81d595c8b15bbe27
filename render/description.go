package render

import (
	"strings"

	"github.com/hsbacot/bookfinder/client"
)

const noDescription = "No description available."

// extractor pulls one candidate description out of a record
type extractor func(client.Book) string

// descriptionExtractors are tried in order; the first non-empty result wins.
// query.ResponseFields does not request these attributes, so records from the
// live search endpoint fall through to noDescription.
var descriptionExtractors = []extractor{
	firstSentence,
	descriptionEntry,
	rawDescription,
}

func describe(b client.Book) string {
	if s := firstNonEmpty(b, descriptionExtractors...); s != "" {
		return s
	}
	return noDescription
}

func firstNonEmpty(b client.Book, extractors ...extractor) string {
	for _, extract := range extractors {
		if s := strings.TrimSpace(extract(b)); s != "" {
			return s
		}
	}
	return ""
}

func firstSentence(b client.Book) string {
	if len(b.FirstSentence) == 0 {
		return ""
	}
	return b.FirstSentence[0]
}

func descriptionEntry(b client.Book) string {
	if len(b.Description.Entries) == 0 {
		return ""
	}
	return b.Description.Entries[0]
}

func rawDescription(b client.Book) string {
	return b.Description.Raw
}
