package search

import (
	"testing"

	"startpage/model"
)

func TestBuildURL(t *testing.T) {
	cases := []struct {
		engine model.SearchEngine
		query  string
		want   string
	}{
		{model.EngineGoogle, "hello world", "https://www.google.com/search?q=hello+world"},
		{model.EngineDDG, "hello world", "https://duckduckgo.com/?q=hello+world"},
		{model.EngineBing, "hello world", "https://www.bing.com/search?q=hello+world"},
		{model.EngineGoogle, "c++ & go?", "https://www.google.com/search?q=c%2B%2B+%26+go%3F"},
		{model.EngineDDG, "  trimmed  ", "https://duckduckgo.com/?q=trimmed"},
	}

	for _, tc := range cases {
		got, ok := BuildURL(tc.engine, tc.query)
		if !ok {
			t.Errorf("BuildURL(%s, %q) unexpectedly empty", tc.engine, tc.query)
			continue
		}
		if got != tc.want {
			t.Errorf("BuildURL(%s, %q) = %q, want %q", tc.engine, tc.query, got, tc.want)
		}
	}
}

func TestBuildURLEmptyQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		if url, ok := BuildURL(model.EngineGoogle, q); ok {
			t.Errorf("BuildURL(%q) = %q, want no target", q, url)
		}
	}
}

func TestBuildURLUnknownEngineFallsBack(t *testing.T) {
	got, ok := BuildURL(model.SearchEngine("altavista"), "retro")
	if !ok || got != "https://www.google.com/search?q=retro" {
		t.Fatalf("unknown engine: got %q ok=%v", got, ok)
	}
}
