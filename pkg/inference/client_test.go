package inference

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientComplete(t *testing.T) {
	var gotPayload map[string]interface{}
	var gotAuth string

	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"model": "sonar-pro",
			"choices": []map[string]interface{}{{
				"message":       map[string]string{"role": "assistant", "content": "  It is sunny.  "},
				"finish_reason": "stop",
			}},
			"usage": map[string]int{"prompt_tokens": 20, "completion_tokens": 5, "total_tokens": 25},
		})
	})

	client, err := NewClient(
		WithBaseURL(srv.URL),
		WithAPIKey("test-key"),
	)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	defer client.Close()

	answer, err := client.Complete(context.Background(), SystemPrompt, "what is the weather")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "It is sunny." {
		t.Errorf("expected trimmed answer, got %q", answer)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotPayload["model"] != "sonar-pro" {
		t.Errorf("expected model sonar-pro, got %v", gotPayload["model"])
	}
	if gotPayload["max_tokens"] != float64(150) {
		t.Errorf("expected max_tokens 150, got %v", gotPayload["max_tokens"])
	}
	if gotPayload["temperature"] != 0.7 {
		t.Errorf("expected temperature 0.7, got %v", gotPayload["temperature"])
	}

	msgs, ok := gotPayload["messages"].([]interface{})
	if !ok || len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %v", gotPayload["messages"])
	}
	first := msgs[0].(map[string]interface{})
	if first["role"] != "system" {
		t.Errorf("expected system message first, got %v", first["role"])
	}
}

func TestClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient()
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestClientAuthError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "invalid api key", "code": "invalid_api_key"},
		})
	})

	client, _ := NewClient(WithBaseURL(srv.URL), WithAPIKey("bad-key"))
	defer client.Close()

	_, err := client.Complete(context.Background(), SystemPrompt, "hello")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if !apiErr.IsUnauthorized() {
		t.Errorf("expected IsUnauthorized, got status %d", apiErr.StatusCode)
	}
	if apiErr.IsRetryable() {
		t.Error("401 should not be retryable")
	}
	if apiErr.Message != "invalid api key" {
		t.Errorf("expected parsed message, got %q", apiErr.Message)
	}
}

func TestClientRetriesServerError(t *testing.T) {
	attempts := 0
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{{
				"message":       map[string]string{"role": "assistant", "content": "ok"},
				"finish_reason": "stop",
			}},
		})
	})

	client, _ := NewClient(WithBaseURL(srv.URL), WithAPIKey("k"))
	defer client.Close()

	answer, err := client.Complete(context.Background(), SystemPrompt, "hello")
	if err != nil {
		t.Fatalf("expected retry success, got %v", err)
	}
	if answer != "ok" {
		t.Errorf("expected ok, got %q", answer)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestClientEmptyChoices(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	client, _ := NewClient(WithBaseURL(srv.URL), WithAPIKey("k"))
	defer client.Close()

	_, err := client.Complete(context.Background(), SystemPrompt, "hello")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "https://api.perplexity.ai" {
		t.Errorf("expected Perplexity URL, got %s", cfg.BaseURL)
	}
	if cfg.Model != "sonar-pro" {
		t.Errorf("expected sonar-pro, got %s", cfg.Model)
	}
	if cfg.MaxTokens != 150 {
		t.Errorf("expected 150, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("expected 0.7, got %f", cfg.Temperature)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("expected 3 retries, got %d", cfg.MaxRetries)
	}
}

func TestFunctionalOptions(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Apply(
		WithBaseURL("http://localhost:11434/v1"),
		WithAPIKey("test-key"),
		WithModel("llama3"),
		WithMaxTokens(512),
		WithTemperature(0.5),
	)

	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("expected Ollama URL, got %s", cfg.BaseURL)
	}
	if cfg.APIKey != "test-key" {
		t.Errorf("expected test-key, got %s", cfg.APIKey)
	}
	if cfg.Model != "llama3" {
		t.Errorf("expected llama3, got %s", cfg.Model)
	}
	if cfg.MaxTokens != 512 {
		t.Errorf("expected 512, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature != 0.5 {
		t.Errorf("expected 0.5, got %f", cfg.Temperature)
	}
}

func TestMockProvider(t *testing.T) {
	ctx := context.Background()
	mock := NewMockWithReply("hi there")

	answer, err := mock.Complete(ctx, SystemPrompt, "hello")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if answer != "hi there" {
		t.Errorf("expected canned reply, got %q", answer)
	}

	if mock.CallCount("Chat") != 1 {
		t.Errorf("expected 1 Chat call, got %d", mock.CallCount("Chat"))
	}
	if last := mock.LastCall(); last == nil || last.Prompt != "hello" {
		t.Errorf("expected last prompt recorded, got %+v", last)
	}

	mock.Reset()
	if len(mock.Calls()) != 0 {
		t.Error("expected 0 calls after reset")
	}
}

func TestMockWithError(t *testing.T) {
	testErr := errors.New("test error")
	mock := WithError(testErr)

	_, err := mock.Complete(context.Background(), SystemPrompt, "hello")
	if !errors.Is(err, testErr) {
		t.Errorf("expected test error, got: %v", err)
	}
}
