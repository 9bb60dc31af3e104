// Package playback provides the video search-and-play collaborator.
//
// PlayFirstMatch searches YouTube for a query and opens the first matching
// video in the system browser, the same trick the desktop assistants use for
// "play X" commands.
package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os/exec"
	"regexp"
	"runtime"
	"time"

	"github.com/novalabs/go-nova/internal/httpc"
)

const (
	defaultSearchURL = "https://www.youtube.com"
	watchPath        = "/watch?v="
)

// ErrNoResults is returned when the search page contains no videos.
var ErrNoResults = errors.New("playback: no results for query")

var videoIDPattern = regexp.MustCompile(`watch\?v=([A-Za-z0-9_-]{11})`)

// Opener launches a URL in the user's browser (or wherever playback should
// happen). Injectable for tests.
type Opener func(url string) error

// Player searches YouTube and plays the first match.
type Player struct {
	baseURL string
	http    *http.Client
	open    Opener
	logger  *slog.Logger
}

// Config holds player configuration.
type Config struct {
	// BaseURL overrides the YouTube endpoint.
	BaseURL string

	// Timeout is the search request timeout.
	Timeout time.Duration

	// Opener launches the result URL. Defaults to the system browser.
	Opener Opener

	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// Option is a functional option for configuring the player.
type Option func(*Config)

// WithBaseURL overrides the YouTube endpoint.
func WithBaseURL(url string) Option {
	return func(c *Config) { c.BaseURL = url }
}

// WithTimeout sets the search request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) { c.Timeout = d }
}

// WithOpener sets the URL opener.
func WithOpener(o Opener) Option {
	return func(c *Config) { c.Opener = o }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewPlayer creates a new playback collaborator.
func NewPlayer(opts ...Option) *Player {
	cfg := &Config{
		BaseURL: defaultSearchURL,
		Timeout: 15 * time.Second,
		Opener:  openBrowser,
		Logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Player{
		baseURL: cfg.BaseURL,
		http:    httpc.NewClient(cfg.Timeout),
		open:    cfg.Opener,
		logger:  cfg.Logger.With("component", "playback.player"),
	}
}

// PlayFirstMatch searches for the query and opens the first video found.
func (p *Player) PlayFirstMatch(ctx context.Context, query string) error {
	searchURL := p.baseURL + "/results?search_query=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return fmt.Errorf("playback: create request: %w", err)
	}

	resp, err := p.http.Do(req)
	if err != nil {
		return fmt.Errorf("playback: search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("playback: search returned %d", resp.StatusCode)
	}

	// The results page is enormous; the first watch link is always in the
	// first couple hundred KB.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return fmt.Errorf("playback: read results: %w", err)
	}

	match := videoIDPattern.FindSubmatch(body)
	if match == nil {
		return ErrNoResults
	}

	videoURL := p.baseURL + watchPath + string(match[1])
	p.logger.Info("playing first match", "query", query, "url", videoURL)

	if err := p.open(videoURL); err != nil {
		return fmt.Errorf("playback: open %s: %w", videoURL, err)
	}
	return nil
}

// openBrowser opens a URL with the platform's default handler.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
