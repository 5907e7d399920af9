// Package omdb implements the outbound movie metadata lookup against the
// OMDb API (https://www.omdbapi.com/).
//
// A lookup has exactly three outcomes: the service matched the title
// (StatusFound), the service answered but knows no such title
// (StatusNotFound), or no usable answer could be obtained at all
// (StatusUnavailable — missing key, network failure, bad status, malformed
// body). None of these is an error to callers: writes proceed without
// enrichment on the latter two.
package omdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://www.omdbapi.com/"

// Status classifies a lookup outcome.
type Status string

const (
	StatusFound       Status = "found"
	StatusNotFound    Status = "not_found"
	StatusUnavailable Status = "unavailable"
)

// Result is a normalized lookup outcome. Fields other than Status are
// populated only when Status == StatusFound.
type Result struct {
	Status    Status
	Title     string
	Year      int
	Director  string
	PosterURL string
}

// Client queries OMDb for a single title per call. It keeps no state
// between calls; the API key is fixed at construction so the disabled
// path is deterministic.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	logger  *logrus.Logger
}

// New builds a client. An empty apiKey yields a client whose lookups
// always report StatusUnavailable without touching the network.
func New(apiKey string, logger *logrus.Logger, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		httpc:   httpc,
		logger:  logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

type omdbResponse struct {
	Response string `json:"Response"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Director string `json:"Director"`
	Poster   string `json:"Poster"`
	Error    string `json:"Error"`
}

// Lookup performs a single attempt against OMDb. year <= 0 means "no year
// hint". There are no retries and no caching.
func (c *Client) Lookup(ctx context.Context, title string, year int) Result {
	if !c.Configured() {
		return Result{Status: StatusUnavailable}
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	if year > 0 {
		q.Set("y", strconv.Itoa(year))
	}
	endpoint := c.baseURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{Status: StatusUnavailable}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("title", title).Warn("omdb request failed")
		}
		return Result{Status: StatusUnavailable}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		if c.logger != nil {
			c.logger.WithField("status", resp.Status).WithField("title", title).Warn("omdb bad status")
		}
		return Result{Status: StatusUnavailable}
	}

	var body omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if c.logger != nil {
			c.logger.WithError(err).WithField("title", title).Warn("omdb malformed response")
		}
		return Result{Status: StatusUnavailable}
	}

	if body.Response != "True" {
		return Result{Status: StatusNotFound}
	}

	return Result{
		Status:    StatusFound,
		Title:     normalizeField(body.Title),
		Year:      parseYear(body.Year),
		Director:  normalizeField(body.Director),
		PosterURL: normalizeField(body.Poster),
	}
}

// normalizeField maps OMDb's "N/A" placeholder to an empty value.
func normalizeField(v string) string {
	v = strings.TrimSpace(v)
	if v == "N/A" {
		return ""
	}
	return v
}

// parseYear extracts the leading four-digit year. OMDb reports series
// ranges like "2010–2013"; the first year wins. Unparsable input yields 0.
func parseYear(v string) int {
	v = strings.TrimSpace(v)
	if len(v) < 4 {
		return 0
	}
	year, err := strconv.Atoi(v[:4])
	if err != nil {
		return 0
	}
	return year
}
