package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.LLMProviders) == 0 {
		t.Error("expected default LLM providers")
	}
	or, ok := cfg.GetLLMProvider("openrouter")
	if !ok {
		t.Fatal("expected openrouter provider")
	}
	if or.APIKey != "${OPENROUTER_API_KEY}" {
		t.Error("expected openrouter API key placeholder")
	}
	if !or.Enabled {
		t.Error("expected openrouter enabled by default")
	}
	if cfg.Defaults.LLMProvider != "openrouter" {
		t.Errorf("expected default provider openrouter, got %s", cfg.Defaults.LLMProvider)
	}
	if cfg.Defaults.MaxSteps != 8 {
		t.Errorf("expected max_steps 8, got %d", cfg.Defaults.MaxSteps)
	}
	if cfg.Defaults.MaxDurationSeconds != 60 {
		t.Errorf("expected max_duration_seconds 60, got %d", cfg.Defaults.MaxDurationSeconds)
	}
}

func TestEnabledLLMProviders(t *testing.T) {
	cfg := &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"on":  {Type: "openrouter", Enabled: true},
			"off": {Type: "openai", Enabled: false},
		},
	}

	enabled := cfg.EnabledLLMProviders()
	if len(enabled) != 1 {
		t.Fatalf("expected 1 enabled provider, got %d", len(enabled))
	}
	if _, ok := enabled["on"]; !ok {
		t.Error("expected provider 'on' to be enabled")
	}
}

func TestResolveEnvVars(t *testing.T) {
	t.Run("resolves environment variable", func(t *testing.T) {
		os.Setenv("TEST_API_KEY", "secret123")
		defer os.Unsetenv("TEST_API_KEY")

		result := ResolveEnvVars("${TEST_API_KEY}")
		if result != "secret123" {
			t.Errorf("expected secret123, got %s", result)
		}
	})

	t.Run("returns empty for missing env var", func(t *testing.T) {
		result := ResolveEnvVars("${DEFINITELY_NOT_SET_12345}")
		if result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})

	t.Run("leaves literal values unchanged", func(t *testing.T) {
		result := ResolveEnvVars("literal-value")
		if result != "literal-value" {
			t.Errorf("expected literal-value, got %s", result)
		}
	})
}

func TestToProviderRegistryConfig(t *testing.T) {
	os.Setenv("TEST_OPENROUTER_KEY", "or-key-123")
	defer os.Unsetenv("TEST_OPENROUTER_KEY")

	cfg := &Config{
		LLMProviders: map[string]LLMProviderCfg{
			"openrouter": {
				Type:    "openrouter",
				Model:   "google/gemini-2.5-pro",
				APIKey:  "${TEST_OPENROUTER_KEY}",
				Enabled: true,
			},
			"literal": {
				Type:    "openai",
				APIKey:  "direct-key",
				Enabled: true,
			},
		},
	}

	regCfg := cfg.ToProviderRegistryConfig()

	if regCfg.LLMProviders["openrouter"].APIKey != "or-key-123" {
		t.Errorf("expected resolved key or-key-123, got %s", regCfg.LLMProviders["openrouter"].APIKey)
	}
	if regCfg.LLMProviders["openrouter"].Model != "google/gemini-2.5-pro" {
		t.Errorf("model not carried through: %s", regCfg.LLMProviders["openrouter"].Model)
	}
	if regCfg.LLMProviders["literal"].APIKey != "direct-key" {
		t.Errorf("expected literal key unchanged, got %s", regCfg.LLMProviders["literal"].APIKey)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
llm_providers:
  openrouter:
    type: openrouter
    model: test-model
    api_key: test-key
    enabled: true
defaults:
  llm_provider: openrouter
  max_steps: 4
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		or, ok := cfg.GetLLMProvider("openrouter")
		if !ok {
			t.Fatal("expected openrouter provider from file")
		}
		if or.Model != "test-model" {
			t.Errorf("expected test-model, got %s", or.Model)
		}
		if cfg.Defaults.MaxSteps != 4 {
			t.Errorf("expected max_steps 4 from file, got %d", cfg.Defaults.MaxSteps)
		}
	})
}

func TestManager_OnChange_Multiple(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
defaults:
  llm_provider: openrouter
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 3 {
		t.Errorf("expected 3 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
defaults:
  llm_provider: openrouter
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	// Call Get concurrently to verify no race conditions
	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				cfg := mgr.Get()
				_ = cfg.Defaults.LLMProvider
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestManager_WatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
defaults:
  llm_provider: openrouter
  max_steps: 8
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	cfg := mgr.Get()
	if cfg.Defaults.MaxSteps != 8 {
		t.Errorf("initial value mismatch: expected 8, got %d", cfg.Defaults.MaxSteps)
	}

	var callbackCount atomic.Int32
	var lastSteps atomic.Int32

	mgr.OnChange(func(cfg *Config) {
		callbackCount.Add(1)
		lastSteps.Store(int32(cfg.Defaults.MaxSteps))
	})

	mgr.WatchConfig()

	// Give fsnotify time to set up the watcher
	time.Sleep(100 * time.Millisecond)

	newContent := `
defaults:
  llm_provider: openrouter
  max_steps: 5
`
	if err := os.WriteFile(configFile, []byte(newContent), 0644); err != nil {
		t.Fatalf("failed to write updated config file: %v", err)
	}

	// Wait for the watcher to detect the change (fsnotify is async)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if callbackCount.Load() > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if callbackCount.Load() == 0 {
		t.Error("callback was not invoked after config file change")
	}

	newCfg := mgr.Get()
	if newCfg.Defaults.MaxSteps != 5 {
		t.Errorf("config not updated: expected 5, got %d", newCfg.Defaults.MaxSteps)
	}
	if lastSteps.Load() != 5 {
		t.Errorf("callback received wrong value: expected 5, got %d", lastSteps.Load())
	}
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written config: %v", err)
	}
	content := string(data)

	if !strings.HasPrefix(content, "# LibroGenie configuration") {
		t.Error("expected comment header")
	}
	for _, want := range []string{"llm_providers:", "${OPENROUTER_API_KEY}", "max_steps: 8", "server:"} {
		if !strings.Contains(content, want) {
			t.Errorf("written config missing %q", want)
		}
	}
}
