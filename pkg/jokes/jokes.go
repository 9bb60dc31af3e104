// Package jokes provides the joke source collaborator.
//
// It wraps the icanhazdadjoke API; a failed fetch is the dispatcher's cue to
// fall back to the chat completion collaborator.
package jokes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/novalabs/go-nova/internal/httpc"
)

const defaultBaseURL = "https://icanhazdadjoke.com"

// ErrEmptyJoke is returned when the API responds without a joke.
var ErrEmptyJoke = errors.New("jokes: empty joke in response")

// Client fetches random jokes.
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

// NewClient creates a new joke client.
func NewClient(opts ...Option) *Client {
	cfg := &Config{
		BaseURL: defaultBaseURL,
		Timeout: 10 * time.Second,
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    httpc.NewClient(cfg.Timeout),
		logger:  cfg.Logger.With("component", "jokes.client"),
	}
}

// Joke fetches one random joke.
func (c *Client) Joke(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("jokes: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "go-nova (https://github.com/novalabs/go-nova)")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("jokes: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("jokes: API error %d: %s", resp.StatusCode, body)
	}

	var result struct {
		Joke string `json:"joke"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("jokes: decode response: %w", err)
	}

	joke := strings.TrimSpace(result.Joke)
	if joke == "" {
		return "", ErrEmptyJoke
	}

	c.logger.Debug("joke fetched", "chars", len(joke))
	return joke, nil
}
