package llm

import (
	"errors"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConfigFromEnv_Explicit(t *testing.T) {
	cfg := ConfigFromEnv(envMap(map[string]string{
		"FLASHDECK_LLM_PROVIDER":    " OpenAI ",
		"FLASHDECK_OPENAI_API_KEY":  "sk-test",
		"FLASHDECK_OPENAI_MODEL":    "gpt-4.1",
		"FLASHDECK_OPENAI_BASE_URL": "http://localhost:9999/v1",
		"GEMINI_API_KEY":            "g-key",
	}))
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI != (Endpoint{APIKey: "sk-test", Model: "gpt-4.1", BaseURL: "http://localhost:9999/v1"}) {
		t.Fatalf("unexpected endpoint: %+v", cfg.OpenAI)
	}
	if cfg.Gemini.APIKey != "g-key" {
		t.Fatalf("standard key not picked up: %+v", cfg.Gemini)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestConfigFromEnv_Discovery(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"nothing", map[string]string{}, ""},
		{"anthropic only", map[string]string{"ANTHROPIC_API_KEY": "a"}, ProviderAnthropic},
		{"gemini first", map[string]string{"ANTHROPIC_API_KEY": "a", "GEMINI_API_KEY": "g"}, ProviderGemini},
		{"openrouter", map[string]string{"FLASHDECK_OPENROUTER_API_KEY": "o"}, ProviderOpenRouter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConfigFromEnv(envMap(tt.env)).Provider; got != tt.want {
				t.Fatalf("provider = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("expected ErrNoProvider, got %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mock needs no key: %v", err)
	}

	cfg.Provider = "llama"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown provider error")
	}

	cfg.Provider = ProviderAnthropic
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestConfig_WithModel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = ProviderGemini

	got := cfg.WithModel("gemini-pro")
	if got.Gemini.Model != "gemini-pro" {
		t.Fatalf("model = %q", got.Gemini.Model)
	}
	if cfg.Gemini.Model != "gemini-flash" {
		t.Fatal("WithModel must not modify the receiver")
	}
	if got := cfg.WithModel(""); got.Gemini.Model != "gemini-flash" {
		t.Fatalf("empty model should keep default, got %q", got.Gemini.Model)
	}
}
