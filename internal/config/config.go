package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults reproduce the fixed constants of the original batch job, so a run
// without any config file behaves identically to the hardcoded pipeline.
const (
	DefaultRulesFile   = "MTG-Rules.txt"
	DefaultOutputFile  = "rules_with_embeddings.json"
	DefaultModel       = "sentence-transformers/all-MiniLM-L6-v2"
	DefaultBaseURL     = "http://localhost:8080/v1"
	DefaultBatchSize   = 16
	DefaultTimeoutSecs = 60
)

// OpenAIConfig holds connection details for an OpenAI-compatible embeddings
// endpoint. The API key is read from the environment variable named by
// APIKeyEnv; local inference servers may not need one.
type OpenAIConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Model       string `yaml:"model"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbedderConfig selects and configures the embedding backend.
type EmbedderConfig struct {
	Type      string        `yaml:"type"`
	BatchSize int           `yaml:"batch_size"`
	OpenAI    *OpenAIConfig `yaml:"openai,omitempty"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	RulesFile  string         `yaml:"rules_file"`
	OutputFile string         `yaml:"output_file"`
	Embedder   EmbedderConfig `yaml:"embedder"`
}

// Load reads a config from the given path. If the file does not exist,
// returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := &AppConfig{}
			applyDefaults(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.RulesFile == "" {
		cfg.RulesFile = DefaultRulesFile
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = DefaultOutputFile
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "openai"
	}
	if cfg.Embedder.BatchSize == 0 {
		cfg.Embedder.BatchSize = DefaultBatchSize
	}
	if cfg.Embedder.Type == "openai" {
		if cfg.Embedder.OpenAI == nil {
			cfg.Embedder.OpenAI = &OpenAIConfig{}
		}
		o := cfg.Embedder.OpenAI
		if o.BaseURL == "" {
			o.BaseURL = DefaultBaseURL
		}
		if o.APIKeyEnv == "" {
			o.APIKeyEnv = "OPENAI_API_KEY"
		}
		if o.Model == "" {
			o.Model = DefaultModel
		}
		if o.TimeoutSecs <= 0 {
			o.TimeoutSecs = DefaultTimeoutSecs
		}
	}
}
