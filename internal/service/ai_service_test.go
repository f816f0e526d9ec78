package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kernel_school_backend/internal/config"
)

func TestAIServiceAsk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ai/ask" {
			t.Errorf("path = %q, want /ai/ask", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}

		var req struct {
			Question string `json:"question"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Question != "What is a goroutine?" {
			t.Errorf("question = %q", req.Question)
		}

		json.NewEncoder(w).Encode(map[string]string{"answer": "A lightweight thread."})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})
	answer, err := svc.Ask("What is a goroutine?")
	if err != nil {
		t.Fatalf("ask error: %v", err)
	}
	if answer != "A lightweight thread." {
		t.Fatalf("answer = %q", answer)
	}
}

func TestAIServiceAskUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL})
	if _, err := svc.Ask("anything"); err == nil {
		t.Fatal("expected error when upstream returns non-200")
	}
}

func TestAIServiceAskUnreachable(t *testing.T) {
	svc := NewAIService(config.AIConfig{BaseURL: "http://127.0.0.1:1"})
	if _, err := svc.Ask("anything"); err == nil {
		t.Fatal("expected error when upstream is unreachable")
	}
}
