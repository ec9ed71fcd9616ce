package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"GemSentinel/internal/model"
)

var envKeys = []string{
	"COINGECKO_BASE_URL", "COINGECKO_API_KEY", "VS_CURRENCY", "TELEGRAM_BOT_TOKEN",
	"TELEGRAM_CHAT_ID", "HTTPS_PROXY", "CRON_SCAN", "SQLITE_PATH", "API_ADDR",
	"TOP_N", "STRICT_CRITERIA",
}

// isolate clears config env vars and runs from an empty dir so no .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
	dir := t.TempDir()
	chdir(t, dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)
	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.VsCurrency != "usd" || cfg.DataSource.PerPage != 250 {
		t.Errorf("unexpected data source defaults: %+v", cfg.DataSource)
	}
	if cfg.Screener.TopN != 10 || cfg.Screener.SortField != "potentialScore" || cfg.Screener.SortDirection != "desc" {
		t.Errorf("unexpected screener defaults: %+v", cfg.Screener)
	}
	if cfg.Database.SQLitePath != "" {
		t.Errorf("journal should be disabled by default, got %q", cfg.Database.SQLitePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yaml")
	yml := `
data_source:
  vs_currency: eur
  per_page: 100
screener:
  top_n: 5
  sort_field: marketCap
  sort_direction: asc
api:
  addr: ":9000"
  cors_origins: ["http://localhost:3000"]
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOP_N", "7")
	t.Setenv("STRICT_CRITERIA", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.VsCurrency != "eur" || cfg.DataSource.PerPage != 100 {
		t.Errorf("file values not applied: %+v", cfg.DataSource)
	}
	if cfg.Screener.TopN != 7 {
		t.Errorf("env override not applied, top_n=%d", cfg.Screener.TopN)
	}
	if !cfg.Screener.StrictCriteria {
		t.Error("expected strict criteria from env")
	}
	if cfg.API.Addr != ":9000" || len(cfg.API.CORSOrigins) != 1 {
		t.Errorf("unexpected api config: %+v", cfg.API)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	os.Unsetenv("TELEGRAM_BOT_TOKEN")
	os.Unsetenv("TELEGRAM_CHAT_ID")
	env := "TELEGRAM_BOT_TOKEN=tok\nTELEGRAM_CHAT_ID=42\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("TELEGRAM_BOT_TOKEN")
		os.Unsetenv("TELEGRAM_CHAT_ID")
	})

	cfg, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.BotToken != "tok" || cfg.Telegram.ChatID != "42" {
		t.Errorf(".env values not applied: %+v", cfg.Telegram)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TOP_N", "ten")
	if _, err := Load(filepath.Join(dir, "config.yaml")); err == nil || !strings.Contains(err.Error(), "TOP_N") {
		t.Errorf("expected TOP_N error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"per page too large", func(c *Config) { c.DataSource.PerPage = 500 }, "per_page"},
		{"top n zero", func(c *Config) { c.Screener.TopN = 0 }, "top_n"},
		{"bad field", func(c *Config) { c.Screener.SortField = "hype" }, "sort_field"},
		{"bad direction", func(c *Config) { c.Screener.SortDirection = "up" }, "sort_direction"},
		{"token without chat", func(c *Config) { c.Telegram.BotToken = "x" }, "chat_id"},
	}
	for _, tt := range tests {
		cfg := &Config{}
		applyDefaults(cfg)
		tt.mod(cfg)
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error mentioning %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestScreenerOptions(t *testing.T) {
	isolate(t)
	t.Setenv("STRICT_CRITERIA", "true")
	t.Setenv("TOP_N", "5")

	cfg, err := Load("missing.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg.Screener.SortField = "MARKETCAP"
	cfg.Screener.SortDirection = "asc"

	opts, err := cfg.ScreenerOptions()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.Field != model.FieldMarketCap || opts.Direction != model.Asc || opts.Limit != 5 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if !opts.Criteria.EnforceMomentum || !opts.Criteria.EnforceSupply {
		t.Errorf("expected strict criteria, got %+v", opts.Criteria)
	}

	cfg.Screener.SortField = "hype"
	if _, err := cfg.ScreenerOptions(); err == nil {
		t.Error("expected error for unknown sort field")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+): restores the working directory on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
