package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// discoveryOrder is the order standard API key variables are probed in
// when no provider is named.
var discoveryOrder = []string{ProviderGemini, ProviderOpenAI, ProviderAnthropic, ProviderOpenRouter}

// Endpoint holds the credentials and model for one provider.
type Endpoint struct {
	APIKey  string
	Model   string // friendly name or raw model ID
	BaseURL string // optional override
}

// Config holds LLM provider configuration.
type Config struct {
	Provider string

	Anthropic  Endpoint
	OpenAI     Endpoint
	Gemini     Endpoint
	OpenRouter Endpoint
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the default models and retry policy with no
// provider selected.
func DefaultConfig() Config {
	return Config{
		Anthropic:  Endpoint{Model: "claude-haiku"},
		OpenAI:     Endpoint{Model: "gpt-4o-mini"},
		Gemini:     Endpoint{Model: "gemini-flash"},
		OpenRouter: Endpoint{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv reads FLASHDECK_LLM_PROVIDER and the per-provider
// FLASHDECK_<NAME>_API_KEY, _MODEL and _BASE_URL variables. A missing key
// falls back to the provider's standard variable, e.g. OPENAI_API_KEY.
// When no provider is named the first one with a key wins. A nil getenv
// means os.Getenv.
func ConfigFromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := DefaultConfig()
	cfg.Provider = strings.ToLower(strings.TrimSpace(getenv("FLASHDECK_LLM_PROVIDER")))

	for _, name := range discoveryOrder {
		ep := cfg.endpoint(name)
		prefix := "FLASHDECK_" + strings.ToUpper(name) + "_"
		ep.APIKey = firstNonEmpty(getenv(prefix+"API_KEY"), getenv(strings.ToUpper(name)+"_API_KEY"))
		if m := getenv(prefix + "MODEL"); m != "" {
			ep.Model = m
		}
		if u := getenv(prefix + "BASE_URL"); u != "" {
			ep.BaseURL = u
		}
	}

	if cfg.Provider == "" {
		for _, name := range discoveryOrder {
			if cfg.endpoint(name).APIKey != "" {
				cfg.Provider = name
				break
			}
		}
	}
	return cfg
}

// WithModel overrides the model of the selected provider. An empty model
// keeps the default.
func (c Config) WithModel(model string) Config {
	if ep := c.endpoint(c.Provider); ep != nil && model != "" {
		ep.Model = model
	}
	return c
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	switch c.Provider {
	case "":
		return ErrNoProvider
	case ProviderMock:
		return nil
	}
	ep := c.endpoint(c.Provider)
	if ep == nil {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if ep.APIKey == "" {
		return fmt.Errorf("FLASHDECK_%s_API_KEY is required for the %s provider", strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}

func (c *Config) endpoint(name string) *Endpoint {
	switch name {
	case ProviderAnthropic:
		return &c.Anthropic
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderGemini:
		return &c.Gemini
	case ProviderOpenRouter:
		return &c.OpenRouter
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
