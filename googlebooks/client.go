package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrNoResults is returned when the volumes API finds nothing for a query.
var ErrNoResults = errors.New("no results")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a Google Books volumes client. The API key is optional;
// the volumes endpoint answers unauthenticated queries at a lower quota.
func NewClient(apiKey string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL: "https://www.googleapis.com/books/v1",
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

// volumesResponse matches /volumes
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo Volume `json:"volumeInfo"`
	} `json:"items"`
}

// Volume is the slice of volumeInfo this application consumes.
type Volume struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Authors             []string `json:"authors"`
	PublishedDate       string   `json:"publishedDate"`
	IndustryIdentifiers []struct {
		Type       string `json:"type"`
		Identifier string `json:"identifier"`
	} `json:"industryIdentifiers"`
	ImageLinks struct {
		Thumbnail string `json:"thumbnail"`
	} `json:"imageLinks"`
}

// ISBN picks an identifier with the fallback chain ISBN-13, then ISBN-10,
// then empty.
func (v Volume) ISBN() string {
	for _, id := range v.IndustryIdentifiers {
		if id.Type == "ISBN_13" {
			return id.Identifier
		}
	}
	for _, id := range v.IndustryIdentifiers {
		if id.Type == "ISBN_10" {
			return id.Identifier
		}
	}
	return ""
}

// PublishYear returns the year component of publishedDate ("2008-08-01" -> 2008).
func (v Volume) PublishYear() int {
	year, _, _ := strings.Cut(v.PublishedDate, "-")
	n, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return n
}

// JoinedAuthors joins the author list with " & ".
func (v Volume) JoinedAuthors() string {
	return strings.Join(v.Authors, " & ")
}

// SearchByISBN looks a volume up by its ISBN.
func (c *Client) SearchByISBN(ctx context.Context, isbn string) (Volume, error) {
	return c.Search(ctx, "isbn:"+isbn)
}

// SearchByTitle looks a volume up by title words.
func (c *Client) SearchByTitle(ctx context.Context, title string) (Volume, error) {
	return c.Search(ctx, "intitle:"+title)
}

// Search runs a raw volumes query and returns the first result.
func (c *Client) Search(ctx context.Context, query string) (Volume, error) {
	params := url.Values{}
	params.Set("q", query)
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}
	u := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())

	var res volumesResponse
	if err := c.get(ctx, u, &res); err != nil {
		return Volume{}, err
	}
	if len(res.Items) == 0 {
		return Volume{}, ErrNoResults
	}
	return res.Items[0].VolumeInfo, nil
}

func (c *Client) get(ctx context.Context, url string, target any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
