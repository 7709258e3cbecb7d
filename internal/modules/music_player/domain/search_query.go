package domain

import (
	"strings"
)

// searchPrefix is prepended to bare search terms so the audio server treats
// them as a YouTube search instead of a literal identifier.
const searchPrefix = "ytsearch"

// SearchQuery represents a user-supplied query for resolving tracks.
type SearchQuery struct {
	Query string // The search term or URL
	IsURL bool   // Whether the query is a direct URL
}

// NewSearchQuery creates a SearchQuery from user input. Absolute URLs pass
// through untouched; anything else becomes a search term.
func NewSearchQuery(input string) *SearchQuery {
	input = strings.TrimSpace(input)

	return &SearchQuery{
		Query: input,
		IsURL: isURL(input),
	}
}

// Identifier returns the query formatted as a loadtracks identifier.
func (q *SearchQuery) Identifier() string {
	if q.IsURL {
		return q.Query
	}
	return searchPrefix + ":" + q.Query
}

// IsValid returns true if the query is not empty.
func (q *SearchQuery) IsValid() bool {
	return q.Query != ""
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") ||
		strings.HasPrefix(input, "https://")
}
