package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	StrategyAPI       = "api"
	StrategyTimedText = "timedtext"

	DefaultCompletionBaseURL = "https://api.euron.one/api/v1/euri"
)

type Config struct {
	CaptionStrategy string           `yaml:"caption_strategy"`
	Youtube         YoutubeConfig    `yaml:"youtube"`
	Completion      CompletionConfig `yaml:"completion"`
	API             APIConfig        `yaml:"api"`
	Miniflux        MinifluxConfig   `yaml:"miniflux"`
	OutputDir       string           `yaml:"output_dir"`
	LogLevel        string           `yaml:"log_level"`
}

type YoutubeConfig struct {
	APIKey        string `yaml:"api_key"`
	WatchEndpoint string `yaml:"watch_endpoint"`
}

type CompletionConfig struct {
	APIKey      string   `yaml:"api_key"`
	BaseURL     string   `yaml:"base_url"`
	Model       string   `yaml:"model"`
	// Temperature is nil when not configured, an explicit 0 is kept.
	Temperature *float32 `yaml:"temperature"`
	MaxTokens   int      `yaml:"max_tokens"`
}

type APIConfig struct {
	Port int `yaml:"port"`
}

type MinifluxConfig struct {
	Endpoint string `yaml:"endpoint"`
	APIKey   string `yaml:"api_key"`
	Interval string `yaml:"interval"`
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the optional YAML file at path, lets the environment override
// it and validates the result.
func Load(path string, lookup LookupFunc) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	getParam := func(param string, target *string) {
		if val, ok := lookup(param); ok {
			*target = val
		}
	}
	getParam("CAPTION_STRATEGY", &c.CaptionStrategy)
	getParam("YOUTUBE_API_KEY", &c.Youtube.APIKey)
	getParam("YOUTUBE_WATCH_ENDPOINT", &c.Youtube.WatchEndpoint)
	getParam("EURI_API_KEY", &c.Completion.APIKey)
	getParam("COMPLETION_BASE_URL", &c.Completion.BaseURL)
	getParam("COMPLETION_MODEL", &c.Completion.Model)
	getParam("MINIFLUX_ENDPOINT", &c.Miniflux.Endpoint)
	getParam("MINIFLUX_APIKEY", &c.Miniflux.APIKey)
	getParam("FETCH_INTERVAL", &c.Miniflux.Interval)
	getParam("OUTPUT_DIR", &c.OutputDir)
	getParam("LOG_LEVEL", &c.LogLevel)

	if val, ok := lookup("COMPLETION_TEMPERATURE"); ok {
		temp, err := strconv.ParseFloat(val, 32)
		if err != nil {
			return fmt.Errorf("invalid COMPLETION_TEMPERATURE %q: %w", val, err)
		}
		t := float32(temp)
		c.Completion.Temperature = &t
	}
	if val, ok := lookup("COMPLETION_MAX_TOKENS"); ok {
		tokens, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid COMPLETION_MAX_TOKENS %q: %w", val, err)
		}
		c.Completion.MaxTokens = tokens
	}
	if val, ok := lookup("API_PORT"); ok {
		port, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid API_PORT %q: %w", val, err)
		}
		c.API.Port = port
	}

	return nil
}

// Validate fills in defaults and checks that the keys needed for the chosen
// caption strategy are present.
func (c *Config) Validate() error {
	if c.CaptionStrategy == "" {
		c.CaptionStrategy = StrategyAPI
	}
	switch c.CaptionStrategy {
	case StrategyAPI:
		if c.Youtube.APIKey == "" {
			return fmt.Errorf("missing YOUTUBE_API_KEY, required for caption strategy %q", StrategyAPI)
		}
	case StrategyTimedText:
	default:
		return fmt.Errorf("unknown caption strategy %q, use %q or %q", c.CaptionStrategy, StrategyAPI, StrategyTimedText)
	}
	if c.Completion.APIKey == "" {
		return fmt.Errorf("missing EURI_API_KEY")
	}

	if c.Completion.BaseURL == "" {
		c.Completion.BaseURL = DefaultCompletionBaseURL
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.Miniflux.Interval == "" {
		c.Miniflux.Interval = "1m"
	}
	if _, err := time.ParseDuration(c.Miniflux.Interval); err != nil {
		return fmt.Errorf("invalid fetch interval %q: %w", c.Miniflux.Interval, err)
	}
	if c.OutputDir == "" {
		c.OutputDir = "summaries"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	return nil
}

// FetchInterval is only meaningful after Validate.
func (c *Config) FetchInterval() time.Duration {
	d, _ := time.ParseDuration(c.Miniflux.Interval)
	return d
}

func (c *Config) ValidateFeed() error {
	if c.Miniflux.Endpoint == "" {
		return fmt.Errorf("missing MINIFLUX_ENDPOINT")
	}
	if c.Miniflux.APIKey == "" {
		return fmt.Errorf("missing MINIFLUX_APIKEY")
	}

	return nil
}
