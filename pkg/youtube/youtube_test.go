package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		matched bool
	}{
		{"watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short URL", "https://youtu.be/abc123", "abc123", true},
		{"embed URL", "https://www.youtube.com/embed/xyz789", "xyz789", true},
		{"watch URL with extra params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ", true},
		{"watch URL with v later", "https://www.youtube.com/watch?list=PL123&v=late456", "late456", true},
		{"short URL with query", "https://youtu.be/abc123?t=10", "abc123", true},
		{"no scheme", "youtube.com/watch?v=bare999", "bare999", true},
		{"unrelated URL", "https://example.com/notyoutube", "", false},
		{"empty string", "", "", false},
		{"youtube homepage", "https://www.youtube.com/", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tc.url)
			if ok != tc.matched {
				t.Fatalf("ExtractVideoID(%q) matched = %v, want %v", tc.url, ok, tc.matched)
			}
			if got != tc.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	got := ThumbnailURL("dQw4w9WgXcQ")
	want := "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"
	if got != want {
		t.Errorf("ThumbnailURL = %q, want %q", got, want)
	}
}

func TestLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("Expected format=json, got %q", r.URL.Query().Get("format"))
		}
		if r.URL.Query().Get("url") == "" {
			t.Errorf("Expected url query parameter to be set")
		}
		fmt.Fprint(w, `{"title":"Linear Algebra 101","author_name":"Math Channel"}`)
	}))
	defer srv.Close()

	client := &Client{HTTPClient: srv.Client(), Endpoint: srv.URL}

	meta, err := client.Lookup(context.Background(), "https://www.youtube.com/watch?v=lin101")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if meta.Title != "Linear Algebra 101" {
		t.Errorf("Expected title 'Linear Algebra 101', got %q", meta.Title)
	}
	if meta.AuthorName != "Math Channel" {
		t.Errorf("Expected author 'Math Channel', got %q", meta.AuthorName)
	}
}

func TestLookupNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := &Client{HTTPClient: srv.Client(), Endpoint: srv.URL}

	if _, err := client.Lookup(context.Background(), "https://www.youtube.com/watch?v=gone"); err == nil {
		t.Fatalf("Expected error for 404 response")
	}
}

func TestLookupOrPlaceholderDegrades(t *testing.T) {
	// A client pointed at nothing: every lookup fails.
	client := &Client{
		HTTPClient: &http.Client{Timeout: 100 * time.Millisecond},
		Endpoint:   "http://127.0.0.1:1",
	}

	meta := client.LookupOrPlaceholder(context.Background(), "https://www.youtube.com/watch?v=unreach1", "unreach1")
	if meta.Title != "YouTube Video unreach1" {
		t.Errorf("Expected placeholder title, got %q", meta.Title)
	}
	if meta.AuthorName != "Unknown Channel" {
		t.Errorf("Expected placeholder channel, got %q", meta.AuthorName)
	}
}

func TestLookupOrPlaceholderFillsMissingChannel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"Orphan Video"}`)
	}))
	defer srv.Close()

	client := &Client{HTTPClient: srv.Client(), Endpoint: srv.URL}

	meta := client.LookupOrPlaceholder(context.Background(), "https://www.youtube.com/watch?v=orphan1", "orphan1")
	if meta.Title != "Orphan Video" {
		t.Errorf("Expected real title kept, got %q", meta.Title)
	}
	if meta.AuthorName != "Unknown Channel" {
		t.Errorf("Expected missing channel backfilled, got %q", meta.AuthorName)
	}
}
