package llmprovider

import (
	"context"
	"time"

	"smart-task-parser/pkg/gemini"
	"smart-task-parser/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// It serves every provider speaking the chat completions format.
type OpenAIAdapter struct {
	name    string
	client  openai.IOpenAI
	timeout time.Duration
}

// NewOpenAIAdapter creates a new adapter reported under name
func NewOpenAIAdapter(name string, client openai.IOpenAI, timeout time.Duration) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client, timeout: timeout}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	var msgs []openai.Message
	if req.SystemInstruction != nil {
		msgs = append(msgs, openai.Message{Role: openai.RoleSystem, Content: joinParts(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" {
			role = openai.RoleUser
		}
		msgs = append(msgs, openai.Message{Role: role, Content: joinParts(m.Parts)})
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text()}}},
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client  gemini.Client
	timeout time.Duration
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Client, timeout time.Duration) *GeminiAdapter {
	return &GeminiAdapter{client: client, timeout: timeout}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := withTimeout(ctx, a.timeout)
	defer cancel()

	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = toGeminiContent(*req.SystemInstruction)
	}
	for i, m := range req.Messages {
		geminiReq.Messages[i] = *toGeminiContent(m)
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}

	out := &Response{
		Content:      Message{Role: RoleAssistant, Parts: []Part{{Text: resp.Text()}}},
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini only knows "user" and "model" roles.
func toGeminiContent(msg Message) *gemini.Content {
	role := msg.Role
	switch role {
	case RoleAssistant:
		role = gemini.RoleModel
	case RoleSystem:
		role = ""
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: role, Parts: parts}
}

func joinParts(parts []Part) string {
	if len(parts) == 1 {
		return parts[0].Text
	}
	var text string
	for _, p := range parts {
		text += p.Text
	}
	return text
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
