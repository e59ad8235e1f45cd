package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvHome     = "BLOG_HOME"
	EnvPostsDir = "BLOG_POSTS_DIR"
	EnvAPIKey   = "PEXEL_API_KEY"
)

type Config struct {
	PostsDir string       `yaml:"posts_dir"`
	LogLevel string       `yaml:"log_level"`
	Pexels   PexelsConfig `yaml:"pexels"`
}

type PexelsConfig struct {
	APIKey         string `yaml:"api_key,omitempty"`
	BaseURL        string `yaml:"base_url"`
	UserAgent      string `yaml:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	DefaultAmount  int    `yaml:"default_amount"`
}

// Timeout bounds a whole header fetch.
func (p PexelsConfig) Timeout() time.Duration {
	if p.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func Default() *Config {
	return &Config{
		PostsDir: ".",
		LogLevel: "info",
		Pexels: PexelsConfig{
			BaseURL:        "https://api.pexels.com/v1",
			UserAgent:      "blog/1.0",
			TimeoutSeconds: 60,
			DefaultAmount:  5,
		},
	}
}

func Dir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".blog")
}

func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", Path(), err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", Path(), err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Pexels.APIKey = v
	}
	if v := os.Getenv(EnvPostsDir); v != "" {
		c.PostsDir = v
	}
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", Dir(), err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return os.WriteFile(Path(), data, 0644)
}
