package playback

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPlayFirstMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_query"); got != "imagine dragons thunder" {
			t.Errorf("unexpected search query: %q", got)
		}
		w.Write([]byte(`<html>junk before {"url":"/watch?v=fKopy74weus"} {"url":"/watch?v=abcdefghijk"}</html>`))
	}))
	defer srv.Close()

	var opened string
	p := NewPlayer(
		WithBaseURL(srv.URL),
		WithOpener(func(url string) error {
			opened = url
			return nil
		}),
	)

	if err := p.PlayFirstMatch(context.Background(), "imagine dragons thunder"); err != nil {
		t.Fatalf("PlayFirstMatch failed: %v", err)
	}
	if opened != srv.URL+"/watch?v=fKopy74weus" {
		t.Errorf("expected first match opened, got %q", opened)
	}
}

func TestPlayFirstMatchNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>no videos here</html>`))
	}))
	defer srv.Close()

	p := NewPlayer(WithBaseURL(srv.URL), WithOpener(func(string) error { return nil }))

	err := p.PlayFirstMatch(context.Background(), "zzzz")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestPlayFirstMatchOpenerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`watch?v=fKopy74weus`))
	}))
	defer srv.Close()

	openErr := errors.New("no browser")
	p := NewPlayer(WithBaseURL(srv.URL), WithOpener(func(string) error { return openErr }))

	err := p.PlayFirstMatch(context.Background(), "anything")
	if !errors.Is(err, openErr) {
		t.Errorf("expected opener error, got %v", err)
	}
}

func TestPlayFirstMatchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewPlayer(WithBaseURL(srv.URL), WithOpener(func(string) error { return nil }))
	if err := p.PlayFirstMatch(context.Background(), "anything"); err == nil {
		t.Error("expected error for 429")
	}
}
