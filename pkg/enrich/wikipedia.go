package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wanderplan/pkg/planparse"
)

const (
	DefaultWikipediaBaseURL = "https://en.wikipedia.org/w/api.php"
	DefaultWikipediaRestURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"
	placeholderPhotoBase    = "https://placehold.co/800x500?text="
)

// PhotoClient finds a representative image through Wikipedia search and
// the page summary endpoint.
type PhotoClient struct {
	HTTP    *http.Client
	BaseURL string
	RestURL string
}

func NewPhotoClient(httpClient *http.Client, baseURL, restURL string) *PhotoClient {
	if httpClient == nil {
		httpClient = NewHTTPClient(DefaultTimeout)
	}
	if baseURL == "" {
		baseURL = DefaultWikipediaBaseURL
	}
	if restURL == "" {
		restURL = DefaultWikipediaRestURL
	}
	if !strings.HasSuffix(restURL, "/") {
		restURL += "/"
	}
	return &PhotoClient{HTTP: httpClient, BaseURL: baseURL, RestURL: restURL}
}

func (c *PhotoClient) Lookup(ctx context.Context, placeName, destinationHint string) (string, error) {
	title, err := c.searchTitle(ctx, searchQuery(placeName, destinationHint))
	if err != nil {
		return "", err
	}

	var summary struct {
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
		OriginalImage struct {
			Source string `json:"source"`
		} `json:"originalimage"`
	}
	page := url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	if err := getJSON(ctx, c.HTTP, c.RestURL+page, &summary); err != nil {
		return "", fmt.Errorf("wikipedia summary %q: %w", title, err)
	}

	switch {
	case summary.Thumbnail.Source != "":
		return summary.Thumbnail.Source, nil
	case summary.OriginalImage.Source != "":
		return summary.OriginalImage.Source, nil
	}
	return "", fmt.Errorf("wikipedia summary %q has no image: %w", title, ErrNoResult)
}

func (c *PhotoClient) searchTitle(ctx context.Context, query string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", query)
	q.Set("srlimit", "1")
	q.Set("format", "json")

	var payload struct {
		Query struct {
			Search []struct {
				Title string `json:"title"`
			} `json:"search"`
		} `json:"query"`
	}
	if err := getJSON(ctx, c.HTTP, c.BaseURL+"?"+q.Encode(), &payload); err != nil {
		return "", fmt.Errorf("wikipedia search %q: %w", query, err)
	}
	if len(payload.Query.Search) == 0 || payload.Query.Search[0].Title == "" {
		return "", fmt.Errorf("wikipedia search %q: %w", query, ErrNoResult)
	}
	return payload.Query.Search[0].Title, nil
}

// searchQuery adds the destination to the place unless the place already names it.
func searchQuery(placeName, destinationHint string) string {
	place := strings.TrimSpace(placeName)
	hint := strings.TrimSpace(destinationHint)
	if place == "" || place == planparse.FallbackPlace {
		return hint
	}
	if hint == "" || strings.Contains(strings.ToLower(place), strings.ToLower(hint)) {
		return place
	}
	return place + " " + hint
}

// PlaceholderPhotoURL is the deterministic image used when no photo is found.
func PlaceholderPhotoURL(placeName string) string {
	name := strings.TrimSpace(placeName)
	if name == "" {
		name = planparse.FallbackPlace
	}
	return placeholderPhotoBase + url.QueryEscape(name)
}
