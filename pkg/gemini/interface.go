package gemini

import "context"

// Client calls the generateContent endpoint of one model. A request is a
// system instruction plus the user text; only the text of the first
// candidate is kept. Safe for concurrent use.
type Client interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

// New validates cfg, fills its defaults and returns a Client.
func New(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
