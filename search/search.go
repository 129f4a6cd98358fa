// Package search builds the navigation target for the search bar.
package search

import (
	"net/url"
	"strings"

	"startpage/model"
)

// baseURLs is the fixed engine table. The query is appended
// percent-encoded.
var baseURLs = map[model.SearchEngine]string{
	model.EngineGoogle: "https://www.google.com/search?q=",
	model.EngineDDG:    "https://duckduckgo.com/?q=",
	model.EngineBing:   "https://www.bing.com/search?q=",
}

// BuildURL returns the full navigation target for a query. An empty or
// whitespace-only query yields no target; submission is a no-op.
func BuildURL(engine model.SearchEngine, query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}

	base, ok := baseURLs[engine]
	if !ok {
		base = baseURLs[model.EngineGoogle]
	}
	return base + url.QueryEscape(query), true
}
