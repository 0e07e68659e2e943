package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"pneuma-faq-bot/config"
	"pneuma-faq-bot/pkg/gemini"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderGemini   = "gemini"

	deepSeekBaseURL   = "https://api.deepseek.com/v1"
	defaultRetryDelay = 500 * time.Millisecond
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, []error) {
	if cfg == nil {
		return nil, []error{fmt.Errorf("LLM config is nil")}
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, nil
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []error

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors, fmt.Errorf("provider %s (priority %d): %w", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	return providers, initErrors
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	switch strings.ToLower(cfg.Name) {
	case ProviderOpenAI:
		return NewOpenAIAdapter(ProviderOpenAI, cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Timeout), nil

	case ProviderDeepSeek:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = deepSeekBaseURL
		}
		return NewOpenAIAdapter(ProviderDeepSeek, cfg.APIKey, baseURL, cfg.Model, cfg.Timeout), nil

	case ProviderGemini:
		gcfg := gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		}
		if cfg.Timeout > 0 {
			gcfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		}
		client, err := gemini.New(gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// ManagerConfig converts the loaded LLM settings into a Manager Config.
func ManagerConfig(cfg config.LLMConfig) *Config {
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      orDefault(cfg.RetryDelay, defaultRetryDelay),
		MaxTotalTimeout: cfg.MaxTotalTimeout,
	}
}

func orDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
