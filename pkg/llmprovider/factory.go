package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"smart-task-parser/config"
	"smart-task-parser/pkg/gemini"
	"smart-task-parser/pkg/log"
	"smart-task-parser/pkg/openai"
)

// DefaultProviderTimeout applies when a provider sets no timeout.
const DefaultProviderTimeout = 30 * time.Second

// openAICompatible holds defaults for providers speaking the OpenAI chat
// completions format.
var openAICompatible = map[string]struct{ baseURL, model string }{
	"deepseek": {baseURL: openai.DeepSeekBaseURL, model: "deepseek-chat"},
	"qwen":     {baseURL: openai.QwenBaseURL, model: "qwen-plus"},
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers without credentials or failing to initialize are skipped; when none
// remain ErrNoProvidersConfigured is returned.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	for _, p := range enabledProviders {
		if p.APIKey == "" {
			l.Debugf(ctx, "llmprovider.InitializeProviders: provider %s has no API key, skipping", p.Name)
			continue
		}
		provider, err := createProvider(p)
		if err != nil {
			l.Warnf(ctx, "llmprovider.InitializeProviders: failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	return providers, nil
}

// NewManagerConfig converts the textual durations of cfg.
func NewManagerConfig(cfg *config.LLMConfig) (*Config, error) {
	retryDelay, err := parseDuration(cfg.RetryDelay, time.Second)
	if err != nil {
		return nil, fmt.Errorf("llm.retry_delay: %w", err)
	}
	maxTotal, err := parseDuration(cfg.MaxTotalTimeout, 0)
	if err != nil {
		return nil, fmt.Errorf("llm.max_total_timeout: %w", err)
	}

	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, nil
}

// NewManagerFromConfig builds a Manager from cfg. Having no usable provider is
// not an error: the Manager then answers every call with
// ErrNoProvidersConfigured.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil && !errors.Is(err, ErrNoProvidersConfigured) {
		return nil, err
	}
	if len(providers) == 0 {
		l.Info(ctx, "llmprovider: no model provider configured, extraction will use the rule-based parser")
	}

	managerCfg, err := NewManagerConfig(cfg)
	if err != nil {
		return nil, err
	}

	return NewManager(providers, managerCfg, l), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	timeout, err := parseDuration(cfg.Timeout, DefaultProviderTimeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
	}

	switch cfg.Name {
	case "openai":
		client, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return NewOpenAIAdapter("openai", client, timeout), nil

	case "deepseek", "qwen":
		compat := openAICompatible[cfg.Name]
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = compat.baseURL
		}
		model := cfg.Model
		if model == "" {
			model = compat.model
		}
		client, err := openai.New(openai.Config{
			APIKey:  cfg.APIKey,
			Model:   model,
			BaseURL: baseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAIAdapter(cfg.Name, client, timeout), nil

	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client, timeout), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
