package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"StockScreener/internal/index"
	"StockScreener/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL   string `yaml:"base_url"`
		APIKey    string `yaml:"api_key"`
		RateLimit int    `yaml:"rate_limit"`
	} `yaml:"data_source"`
	Schedule struct {
		ReportCron string `yaml:"report_cron"`
	} `yaml:"schedule"`
	Index struct {
		SP500URL string `yaml:"sp500_url"`
		DJIAURL  string `yaml:"djia_url"`
	} `yaml:"index"`
	Watchlist []model.Query `yaml:"watchlist"`
	Proxy     string        `yaml:"proxy"`
}

// DefaultPath is used when CONFIG_PATH is unset.
const DefaultPath = "configs/config.yaml"

// Path returns the config file location.
func Path() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse RATE_LIMIT: %w", err)
		}
		cfg.DataSource.RateLimit = n
	}

	// Defaults
	if cfg.DataSource.RateLimit == 0 {
		cfg.DataSource.RateLimit = 2
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 30 16 * * 1-5"
	}
	for i := range cfg.Watchlist {
		if cfg.Watchlist[i].Benchmark == "" {
			cfg.Watchlist[i].Benchmark = model.DefaultBenchmark
		}
		if cfg.Watchlist[i].LookbackDays == 0 {
			cfg.Watchlist[i].LookbackDays = model.DefaultLookbackDays
		}
	}

	return cfg, nil
}

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	if c.DataSource.RateLimit < 0 {
		return fmt.Errorf("data_source.rate_limit must not be negative")
	}
	if c.DataSource.APIKey != "" && c.DataSource.BaseURL == "" {
		return fmt.Errorf("data_source.base_url is required when api_key is set")
	}
	for i, q := range c.Watchlist {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("watchlist[%d]: %w", i, err)
		}
		if _, err := index.LookupBenchmark(q.Benchmark); err != nil {
			return fmt.Errorf("watchlist[%d]: %w", i, err)
		}
	}
	return nil
}

// ValidateTelegram checks the settings needed by the bot.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	return nil
}
