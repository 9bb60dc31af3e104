package jokes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("expected JSON accept header, got %q", r.Header.Get("Accept"))
		}
		w.Write([]byte(`{"id":"abc","joke":"Why do programmers prefer dark mode? Because light attracts bugs.","status":200}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	joke, err := client.Joke(context.Background())
	if err != nil {
		t.Fatalf("Joke failed: %v", err)
	}
	if joke != "Why do programmers prefer dark mode? Because light attracts bugs." {
		t.Errorf("unexpected joke: %q", joke)
	}
}

func TestJokeEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"abc","joke":"","status":200}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Joke(context.Background())
	if !errors.Is(err, ErrEmptyJoke) {
		t.Errorf("expected ErrEmptyJoke, got %v", err)
	}
}

func TestJokeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	if _, err := client.Joke(context.Background()); err == nil {
		t.Error("expected error for 503")
	}
}
