// Package catalog fetches pages of artworks from the remote catalog API.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"artshelf/internal/domain"
)

const userAgent = "artshelf/1.0"

// StatusError is returned when the catalog responds with a non-2xx status
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog returned %d for %s", e.StatusCode, e.URL)
}

// Client fetches artwork pages from the catalog endpoint
type Client struct {
	baseURL  string
	pageSize int
	fields   []string
	http     *retryablehttp.Client
}

// NewClient creates a catalog client. retries is the number of automatic
// retry attempts per request; 0 means a failed fetch is surfaced immediately.
func NewClient(baseURL string, pageSize, retries int) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = retries
	rc.HTTPClient.Timeout = 15 * time.Second
	rc.Logger = nil // request logging goes through logrus below

	return &Client{
		baseURL:  baseURL,
		pageSize: pageSize,
		fields: append([]string(nil),
			"id", "title", "place_of_origin", "artist_display", "date_start", "date_end"),
		http: rc,
	}
}

// SetFields overrides the field list requested from the catalog
func (c *Client) SetFields(fields []string) {
	if len(fields) > 0 {
		c.fields = append([]string(nil), fields...)
	}
}

// PageSize returns the configured page size
func (c *Client) PageSize() int {
	return c.pageSize
}

// FetchPage fetches a single 1-based page of artworks plus the total count.
// Non-2xx responses and transport failures are returned as errors; the
// caller decides how to surface them.
func (c *Client) FetchPage(ctx context.Context, pageNumber int) (*domain.Page, error) {
	if pageNumber < 1 {
		return nil, fmt.Errorf("page number must be >= 1, got %d", pageNumber)
	}

	reqURL, err := c.pageURL(pageNumber)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page %d: %w", pageNumber, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading page %d: %w", pageNumber, err)
	}

	page := parsePage(string(body), pageNumber)

	logrus.WithFields(logrus.Fields{
		"page":     pageNumber,
		"records":  len(page.Artworks),
		"total":    page.TotalCount,
		"duration": time.Since(start),
	}).Debug("page fetched")

	return page, nil
}

func (c *Client) pageURL(pageNumber int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	q := u.Query()
	q.Set("page", strconv.Itoa(pageNumber))
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("fields", strings.Join(c.fields, ","))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// parsePage extracts artworks and pagination metadata from the response
// envelope. Missing or unknown fields come back as zero values so a sparse
// record renders blank instead of failing the fetch.
func parsePage(body string, pageNumber int) *domain.Page {
	page := &domain.Page{
		Number:     pageNumber,
		TotalCount: int(gjson.Get(body, "pagination.total").Int()),
	}

	for _, item := range gjson.Get(body, "data").Array() {
		page.Artworks = append(page.Artworks, domain.Artwork{
			ID:            gjson.Get(item.Raw, "id").Int(),
			Title:         gjson.Get(item.Raw, "title").String(),
			PlaceOfOrigin: gjson.Get(item.Raw, "place_of_origin").String(),
			ArtistDisplay: gjson.Get(item.Raw, "artist_display").String(),
			DateStart:     int(gjson.Get(item.Raw, "date_start").Int()),
			DateEnd:       int(gjson.Get(item.Raw, "date_end").Int()),
		})
	}

	return page
}
