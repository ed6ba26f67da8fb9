package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateChatCompletion(t *testing.T) {
	var gotRequest chatRequest
	var gotAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotRequest)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"choices": [
				{
					"message": {
						"role": "assistant",
						"content": "",
						"function_call": {"name": "extract_construction_tasks", "arguments": "{\"tasks\": []}"}
					}
				}
			]
		}`))
	}))
	defer ts.Close()

	client := NewClient("test-key")
	client.SetAPIURL(ts.URL)

	resp, err := client.CreateChatCompletion(context.Background(), &Request{
		Messages: []Message{
			{Role: "system", Content: "instrucciones"},
			{Role: "user", Content: "transcripción"},
		},
		Functions: []FunctionDef{
			{Name: "extract_construction_tasks", Parameters: map[string]any{"type": "object"}},
		},
		ForceFunction: "extract_construction_tasks",
		Temperature:   0.3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", gotAuth)
	}
	if gotRequest.Model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, gotRequest.Model)
	}
	if len(gotRequest.Messages) != 2 || gotRequest.Messages[0].Role != "system" {
		t.Errorf("unexpected messages: %+v", gotRequest.Messages)
	}
	if len(gotRequest.Functions) != 1 {
		t.Fatalf("expected 1 function, got %d", len(gotRequest.Functions))
	}
	if gotRequest.Temperature != 0.3 {
		t.Errorf("expected temperature 0.3, got %v", gotRequest.Temperature)
	}

	if resp.FunctionCall == nil {
		t.Fatal("expected a function call in the response")
	}
	if resp.FunctionCall.Name != "extract_construction_tasks" {
		t.Errorf("unexpected function name %q", resp.FunctionCall.Name)
	}
}

func TestCreateChatCompletionAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer ts.Close()

	client := NewClient("bad-key")
	client.SetAPIURL(ts.URL)

	_, err := client.CreateChatCompletion(context.Background(), &Request{
		Messages: []Message{{Role: "user", Content: "hola"}},
	})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}
}

func TestNewDefaults(t *testing.T) {
	c := New(Config{APIKey: "k"})
	if c.model != DefaultModel {
		t.Errorf("expected default model, got %q", c.model)
	}
	if c.apiURL != DefaultAPIURL {
		t.Errorf("expected default url, got %q", c.apiURL)
	}
	if c.Model() != DefaultModel {
		t.Errorf("Model(): expected %q, got %q", DefaultModel, c.Model())
	}
}
