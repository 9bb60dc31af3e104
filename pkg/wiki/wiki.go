// Package wiki provides the encyclopedia summary collaborator.
//
// It wraps the MediaWiki extracts API to fetch a short plain-text summary for
// a subject, capped at a number of sentences. Disambiguation pages and missing
// pages surface as sentinel errors so the dispatcher can fall back to the
// chat completion collaborator.
package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/novalabs/go-nova/internal/httpc"
)

const defaultBaseURL = "https://en.wikipedia.org/w/api.php"

// Client queries the MediaWiki extracts API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Config holds client configuration.
type Config struct {
	// BaseURL overrides the default API endpoint.
	BaseURL string

	// Timeout is the request timeout.
	Timeout time.Duration

	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// Option is a functional option for configuring the client.
type Option func(*Config)

// WithBaseURL overrides the default API endpoint.
func WithBaseURL(url string) Option {
	return func(c *Config) { c.BaseURL = url }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// DefaultConfig returns sensible defaults for English Wikipedia.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: defaultBaseURL,
		Timeout: 10 * time.Second,
		Logger:  slog.Default(),
	}
}

// NewClient creates a new wiki client.
func NewClient(opts ...Option) *Client {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    httpc.NewClient(cfg.Timeout),
		logger:  cfg.Logger.With("component", "wiki.client"),
	}
}

// Summary fetches a plain-text summary for the subject, capped at
// maxSentences. Returns ErrDisambiguation for disambiguation pages and
// ErrNotFound when no page matches.
func (c *Client) Summary(ctx context.Context, subject string, maxSentences int) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", ErrNotFound
	}
	if maxSentences <= 0 {
		maxSentences = 2
	}

	params := url.Values{
		"action":      {"query"},
		"format":      {"json"},
		"prop":        {"extracts|pageprops"},
		"ppprop":      {"disambiguation"},
		"explaintext": {"1"},
		"exsentences": {strconv.Itoa(maxSentences)},
		"redirects":   {"1"},
		"titles":      {subject},
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("wiki: create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("wiki: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("wiki: decode response: %w", err)
	}

	for id, page := range result.Query.Pages {
		if id == "-1" || page.Missing != nil {
			return "", ErrNotFound
		}
		if page.PageProps != nil {
			if _, ok := page.PageProps["disambiguation"]; ok {
				return "", ErrDisambiguation
			}
		}
		extract := strings.TrimSpace(page.Extract)
		if extract == "" {
			return "", ErrNotFound
		}

		c.logger.Debug("summary fetched",
			"subject", subject,
			"title", page.Title,
			"chars", len(extract),
		)
		return extract, nil
	}

	return "", ErrNotFound
}

type queryResponse struct {
	Query struct {
		Pages map[string]struct {
			Title     string                     `json:"title"`
			Extract   string                     `json:"extract"`
			Missing   *string                    `json:"missing"`
			PageProps map[string]json.RawMessage `json:"pageprops"`
		} `json:"pages"`
	} `json:"query"`
}
