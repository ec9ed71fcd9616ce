package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"GemSentinel/internal/model"
	"GemSentinel/internal/screener"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL    string `yaml:"base_url"`
		APIKey     string `yaml:"api_key"`
		VsCurrency string `yaml:"vs_currency"`
		PerPage    int    `yaml:"per_page"`
	} `yaml:"data_source"`
	Screener struct {
		TopN           int    `yaml:"top_n"`
		SortField      string `yaml:"sort_field"`
		SortDirection  string `yaml:"sort_direction"`
		StrictCriteria bool   `yaml:"strict_criteria"`
	} `yaml:"screener"`
	Schedule struct {
		ScanCron string `yaml:"scan_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	API struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"api"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies .env and environment variable overrides.
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

	// .env never overrides variables already set in the process environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("VS_CURRENCY"); v != "" {
		cfg.DataSource.VsCurrency = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_SCAN"); v != "" {
		cfg.Schedule.ScanCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("API_ADDR"); v != "" {
		cfg.API.Addr = v
	}
	if v := os.Getenv("TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TOP_N: %w", err)
		}
		cfg.Screener.TopN = n
	}
	if v := os.Getenv("STRICT_CRITERIA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("STRICT_CRITERIA: %w", err)
		}
		cfg.Screener.StrictCriteria = b
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.DataSource.VsCurrency == "" {
		cfg.DataSource.VsCurrency = "usd"
	}
	if cfg.DataSource.PerPage == 0 {
		cfg.DataSource.PerPage = 250
	}
	if cfg.Screener.TopN == 0 {
		cfg.Screener.TopN = 10
	}
	if cfg.Screener.SortField == "" {
		cfg.Screener.SortField = string(model.FieldPotentialScore)
	}
	if cfg.Screener.SortDirection == "" {
		cfg.Screener.SortDirection = string(model.Desc)
	}
	if cfg.Schedule.ScanCron == "" {
		cfg.Schedule.ScanCron = "0 */30 * * * *"
	}
	if cfg.API.Addr == "" {
		cfg.API.Addr = ":8080"
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.DataSource.PerPage < 1 || c.DataSource.PerPage > 250 {
		return fmt.Errorf("data_source.per_page must be between 1 and 250")
	}
	if c.Screener.TopN < 1 {
		return fmt.Errorf("screener.top_n must be positive")
	}
	if _, err := model.ParseField(c.Screener.SortField); err != nil {
		return fmt.Errorf("screener.sort_field: %w", err)
	}
	if _, err := model.ParseDirection(c.Screener.SortDirection); err != nil {
		return fmt.Errorf("screener.sort_direction: %w", err)
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	return nil
}

// ScreenerOptions builds the pipeline options for scheduled reports and the default board.
func (c *Config) ScreenerOptions() (screener.Options, error) {
	field, err := model.ParseField(c.Screener.SortField)
	if err != nil {
		return screener.Options{}, err
	}
	dir, err := model.ParseDirection(c.Screener.SortDirection)
	if err != nil {
		return screener.Options{}, err
	}
	criteria := screener.DefaultCriteria()
	if c.Screener.StrictCriteria {
		criteria = screener.StrictCriteria()
	}
	return screener.Options{
		Criteria:  criteria,
		Field:     field,
		Direction: dir,
		Limit:     c.Screener.TopN,
	}, nil
}
