package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.LLM.Provider != "openai" {
		t.Errorf("expected provider openai, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("expected model gpt-4o-mini, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "" {
		t.Errorf("expected empty base_url by default, got %s", cfg.LLM.BaseURL)
	}
	if cfg.LLM.OllamaURL != "http://localhost:11434" {
		t.Errorf("expected ollama_url http://localhost:11434, got %s", cfg.LLM.OllamaURL)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("expected default db_path to be set")
	}
	if cfg.Report.Department == "" {
		t.Error("expected default department to be set")
	}
	if cfg.Report.OutputDir == "" {
		t.Error("expected default output_dir to be set")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.LLM.Provider != "openai" {
		t.Errorf("expected default provider, got %s", cfg.LLM.Provider)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[llm]
provider = "ollama"
model = "llama3"
base_url = "https://llm.example.com/v1"
ollama_url = "http://localhost:11435"

[storage]
db_path = "/tmp/test.db"

[report]
department = "Platform Engineering"
output_dir = "/tmp/exports"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LLM.Provider != "ollama" {
		t.Errorf("expected provider ollama, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "llama3" {
		t.Errorf("expected model llama3, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.BaseURL != "https://llm.example.com/v1" {
		t.Errorf("expected base_url https://llm.example.com/v1, got %s", cfg.LLM.BaseURL)
	}
	if cfg.LLM.OllamaURL != "http://localhost:11435" {
		t.Errorf("expected ollama_url http://localhost:11435, got %s", cfg.LLM.OllamaURL)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Report.Department != "Platform Engineering" {
		t.Errorf("expected department Platform Engineering, got %s", cfg.Report.Department)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[llm]
model = "gpt-4o-mini"

[storage]
db_path = "/tmp/test.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("WORKLOG_LLM_MODEL", "gpt-4o")
	t.Setenv("WORKLOG_LLM_OLLAMA_URL", "http://ollama.local:11434")
	t.Setenv("WORKLOG_DB_PATH", "/tmp/override.db")
	t.Setenv("WORKLOG_REPORT_DEPARTMENT", "R&D")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.OllamaURL != "http://ollama.local:11434" {
		t.Errorf("expected ollama_url http://ollama.local:11434, got %s", cfg.LLM.OllamaURL)
	}
	if cfg.Storage.DBPath != "/tmp/override.db" {
		t.Errorf("expected db_path /tmp/override.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.Report.Department != "R&D" {
		t.Errorf("expected department R&D, got %s", cfg.Report.Department)
	}
}

func TestValidate_BadProvider(t *testing.T) {
	cfg := Default()
	cfg.LLM.Provider = "bard"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unsupported provider")
	}
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := Default()
	cfg.Storage.DBPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty db_path")
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.LLM.Model = "gpt-4o"
	cfg.Report.Department = "QA"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.LLM.Model != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", loaded.LLM.Model)
	}
	if loaded.Report.Department != "QA" {
		t.Errorf("expected department QA, got %s", loaded.Report.Department)
	}
}
