package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"smart-task-planner/config"
	"smart-task-planner/pkg/deepseek"
	"smart-task-planner/pkg/log"
)

var defaultBaseURLs = map[string]string{
	"deepseek": deepseek.DefaultBaseURL,
	"together": deepseek.TogetherBaseURL,
	"openai":   deepseek.OpenAIBaseURL,
}

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Providers that fail to initialize are skipped with a warning.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrs []error
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			err = fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err)
			initErrs = append(initErrs, err)
			logger.Warnf(ctx, "llmprovider.InitializeProviders: skipping provider: %v", err)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %w", errors.Join(initErrs...))
	}
	return providers, nil
}

// NewManagerFromConfig builds the providers and the Manager in one step.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, logger log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	retryDelay, err := parseOptionalDuration(cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}
	maxTotal, err := parseOptionalDuration(cfg.MaxTotalTimeout)
	if err != nil {
		return nil, fmt.Errorf("max_total_timeout: %w", err)
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		var ok bool
		baseURL, ok = defaultBaseURLs[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("unknown provider %q and no base_url given", cfg.Name)
		}
	}

	timeout, err := parseOptionalDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("timeout: %w", err)
	}

	client, err := deepseek.New(deepseek.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewOpenAICompatAdapter(cfg.Name, client), nil
}

func parseOptionalDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
