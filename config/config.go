package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Marketview MarketviewConfig `yaml:"marketview"`
	Metrics    MetricsConfig    `yaml:"metrics"`
	Reader     ReaderConfig     `yaml:"reader"`
	Source     SourceConfig     `yaml:"source"`
	Listing    ListingConfig    `yaml:"listing"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type MarketviewConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type MetricsConfig struct {
	CloudWatch bool   `yaml:"cloudwatch"`
	Namespace  string `yaml:"namespace"`
	Region     string `yaml:"region"`
}

type ReaderConfig struct {
	Timeout        time.Duration        `yaml:"timeout"`
	UserAgent      string               `yaml:"user_agent"`
	ConnectionPool ConnectionPoolConfig `yaml:"connection_pool"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
}

type ConnectionPoolConfig struct {
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxConnsPerHost int           `yaml:"max_conns_per_host"`
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	BurstSize         int `yaml:"burst_size"`
}

type SourceConfig struct {
	Bitpin BitpinSourceConfig `yaml:"bitpin"`
}

type BitpinSourceConfig struct {
	Markets MarketsFeedConfig `yaml:"markets"`
	Book    BookFeedConfig    `yaml:"book"`
	Matches BookFeedConfig    `yaml:"matches"`
}

type MarketsFeedConfig struct {
	URL      string        `yaml:"url"`
	Interval time.Duration `yaml:"interval"`
}

type BookFeedConfig struct {
	URL        string `yaml:"url"`
	IntervalMs int    `yaml:"interval_ms"`
	Limit      int    `yaml:"limit"`
}

type ListingConfig struct {
	PageSize         int      `yaml:"page_size"`
	PageDisplayLimit int      `yaml:"page_display_limit"`
	Quotes           []string `yaml:"quotes"`
}

type LoggingConfig struct {
	Level         string `yaml:"level"`
	Format        string `yaml:"format"`
	Output        string `yaml:"output"`
	MaxAge        int    `yaml:"max_age"`
	DashboardName string `yaml:"dashboard_name"`
}

func LoadConfig(path string) (*Config, error) {
	// Read configuration file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		Listing: ListingConfig{
			PageSize:         12,
			PageDisplayLimit: 5,
			Quotes:           []string{"IRT", "USDT"},
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override metrics settings from environment variables if available
	if config.Metrics.CloudWatch {
		if v := os.Getenv("AWS_REGION"); v != "" {
			config.Metrics.Region = strings.TrimSpace(v)
		}
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Marketview.Name == "" {
		return fmt.Errorf("marketview.name is required")
	}

	if cfg.Marketview.Version == "" {
		return fmt.Errorf("marketview.version is required")
	}

	if cfg.Reader.Timeout <= 0 {
		return fmt.Errorf("reader.timeout must be greater than 0")
	}

	if cfg.Source.Bitpin.Markets.URL == "" {
		return fmt.Errorf("source.bitpin.markets.url is required")
	}
	if cfg.Source.Bitpin.Markets.Interval <= 0 {
		return fmt.Errorf("source.bitpin.markets.interval must be greater than 0")
	}

	feeds := []struct {
		name string
		cfg  BookFeedConfig
	}{
		{"source.bitpin.book", cfg.Source.Bitpin.Book},
		{"source.bitpin.matches", cfg.Source.Bitpin.Matches},
	}
	for _, feed := range feeds {
		if feed.cfg.URL == "" {
			return fmt.Errorf("%s.url is required", feed.name)
		}
		if feed.cfg.IntervalMs <= 0 {
			return fmt.Errorf("%s.interval_ms must be greater than 0", feed.name)
		}
		if feed.cfg.Limit <= 0 {
			return fmt.Errorf("%s.limit must be greater than 0", feed.name)
		}
	}

	if cfg.Listing.PageSize <= 0 {
		return fmt.Errorf("listing.page_size must be greater than 0")
	}
	if cfg.Listing.PageDisplayLimit <= 0 {
		return fmt.Errorf("listing.page_display_limit must be greater than 0")
	}
	if len(cfg.Listing.Quotes) == 0 {
		return fmt.Errorf("listing.quotes must name at least one quote currency")
	}

	return nil
}
