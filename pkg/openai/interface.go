package openai

import "context"

// IOpenAI defines the interface for chat completion clients speaking the
// OpenAI wire format.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}
