package internal

import "strings"

// NoDescription is stored when the backend omits an entry's description.
const NoDescription = "No description"

// SearchResult is one search hit as reported by the extraction backend.
type SearchResult struct {
	ID          string
	Title       string
	Uploader    string
	Description string
	Likes       int
	Dislikes    int
}

// URL returns the canonical watch URL for the result.
func (r SearchResult) URL() string {
	return WatchURL(r.ID)
}

// stripQuotes removes every literal double quote. Some backends emit scalars
// that are themselves quoted, and ids end up inside a URL.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}
