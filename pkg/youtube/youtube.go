// Package youtube extracts video ids from pasted URLs and looks up basic
// metadata through the oEmbed endpoint. The lookup is an opaque external
// collaborator: when it is unreachable the caller still gets a usable
// placeholder record.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"
)

// DefaultOEmbedEndpoint is the public oEmbed endpoint for YouTube.
const DefaultOEmbedEndpoint = "https://www.youtube.com/oembed"

// videoIDPatterns cover the supported pasted-URL shapes. First match wins.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ExtractVideoID pulls the external video id out of a pasted URL. The second
// return is false when no pattern matches; callers must treat that as a
// validation failure and not proceed to a metadata lookup.
func ExtractVideoID(rawURL string) (string, bool) {
	for _, pattern := range videoIDPatterns {
		if match := pattern.FindStringSubmatch(rawURL); match != nil {
			return match[1], true
		}
	}
	return "", false
}

// ThumbnailURL returns the maxresdefault thumbnail for a video id.
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://i.ytimg.com/vi/%s/maxresdefault.jpg", videoID)
}

// Metadata is the subset of the oEmbed response the organizer consumes.
type Metadata struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// Client queries the oEmbed endpoint.
type Client struct {
	HTTPClient *http.Client
	Endpoint   string
}

// NewClient returns a client against the public endpoint with a bounded
// request timeout.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Endpoint:   DefaultOEmbedEndpoint,
	}
}

// Lookup fetches title and channel name for a canonical video URL. Any
// transport or decode failure is returned as an error; use
// LookupOrPlaceholder when degraded data is acceptable.
func (c *Client) Lookup(ctx context.Context, videoURL string) (Metadata, error) {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = DefaultOEmbedEndpoint
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	reqURL := fmt.Sprintf("%s?url=%s&format=json", endpoint, url.QueryEscape(videoURL))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("building oembed request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("fetching oembed metadata: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("oembed lookup returned status %d", resp.StatusCode)
	}

	var meta Metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return Metadata{}, fmt.Errorf("decoding oembed response: %w", err)
	}

	return meta, nil
}

// LookupOrPlaceholder resolves metadata for a video, degrading to
// placeholder title and channel when the endpoint is unavailable. The
// returned metadata is always usable for a save.
func (c *Client) LookupOrPlaceholder(ctx context.Context, videoURL, videoID string) Metadata {
	meta, err := c.Lookup(ctx, videoURL)
	if err != nil || meta.Title == "" {
		return Metadata{
			Title:      fmt.Sprintf("YouTube Video %s", videoID),
			AuthorName: "Unknown Channel",
		}
	}
	if meta.AuthorName == "" {
		meta.AuthorName = "Unknown Channel"
	}
	return meta
}
