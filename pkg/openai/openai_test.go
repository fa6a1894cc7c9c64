package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smart-task-parser/pkg/openai"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := openai.New(openai.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != openai.DefaultModel {
		t.Errorf("Model() = %q, want %q", c.Model(), openai.DefaultModel)
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}

		var req openai.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Model != "gpt-test" || req.MaxTokens != 500 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		last := req.Messages[len(req.Messages)-1].Content
		if last == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream down"))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "gpt-test",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"taskName\":\"Call mom\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
		}`))
	}))
	defer ts.Close()

	tests := []struct {
		name    string
		apiKey  string
		text    string
		wantErr string
		want    string
	}{
		{name: "Success", apiKey: "test-key", text: "Call mom", want: `{"taskName":"Call mom"}`},
		{name: "Server error", apiKey: "test-key", text: "cause_500", wantErr: "API error 500: upstream down"},
		{name: "Unauthorized", apiKey: "wrong", text: "Call mom", wantErr: "API error 401: invalid api key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := openai.New(openai.Config{APIKey: tt.apiKey, Model: "gpt-test", BaseURL: ts.URL + "/"})
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			resp, err := c.GenerateContent(context.Background(), &openai.Request{
				Messages: []openai.Message{
					{Role: openai.RoleSystem, Content: "extract"},
					{Role: openai.RoleUser, Content: tt.text},
				},
				MaxTokens: 500,
			})
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GenerateContent: %v", err)
			}
			if resp.Text() != tt.want {
				t.Errorf("Text() = %q, want %q", resp.Text(), tt.want)
			}
			if resp.Usage.TotalTokens != 17 {
				t.Errorf("TotalTokens = %d, want 17", resp.Usage.TotalTokens)
			}
		})
	}
}

func TestResponse_TextEmpty(t *testing.T) {
	var r *openai.Response
	if r.Text() != "" {
		t.Error("nil response should have empty text")
	}
	if (&openai.Response{}).Text() != "" {
		t.Error("response without choices should have empty text")
	}
}
