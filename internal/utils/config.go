package utils

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime settings for the dashboard server.
type Config struct {
	Server struct {
		Host    string `yaml:"host"`
		Port    string `yaml:"port"`
		Prefork bool   `yaml:"prefork"`
	} `yaml:"server"`

	Logger struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Compress   bool   `yaml:"compress"`
		Level      string `yaml:"level"`
	} `yaml:"logger"`

	Cache struct {
		RedisHost        string        `yaml:"redis_host"`
		PageCacheDB      int           `yaml:"page_cache_db"`
		PageCacheEnabled bool          `yaml:"page_cache_enabled"`
		PageCacheTTL     time.Duration `yaml:"page_cache_ttl"`
		RateLimitDB      int           `yaml:"rate_limit_db"`
	} `yaml:"cache"`

	RateLimiter struct {
		Interval          time.Duration `yaml:"interval"`
		UserLimit         int           `yaml:"user_limit"`
		EnableUserLimiter bool          `yaml:"enable_user_limiter"`
	} `yaml:"rate_limiter"`

	Fonts struct {
		SourceURL   string `yaml:"source_url"`
		Family      string `yaml:"family"`
		Subset      string `yaml:"subset"`
		TimeoutSecs int    `yaml:"timeout_secs"`
	} `yaml:"fonts"`
}

// AppConfig is the process-wide configuration, populated by LoadConfig.
var AppConfig Config

// defaultConfig returns a Config that makes the server runnable without a
// config file: local listen address, stdout logging, caching disabled.
func defaultConfig() Config {
	var cfg Config
	cfg.Server.Host = ""
	cfg.Server.Port = ":3000"
	cfg.Logger.Level = "info"
	cfg.Logger.MaxSizeMB = 10
	cfg.Logger.MaxBackups = 3
	cfg.Logger.MaxAgeDays = 14
	cfg.Cache.RedisHost = "localhost:6379"
	cfg.Cache.PageCacheDB = 0
	cfg.Cache.PageCacheTTL = 24 * time.Hour
	cfg.Cache.RateLimitDB = 1
	cfg.RateLimiter.Interval = time.Minute
	cfg.RateLimiter.UserLimit = 60
	cfg.RateLimiter.EnableUserLimiter = true
	cfg.Fonts.SourceURL = "https://cdn.jsdelivr.net/npm/geist@1.3.1/dist/fonts/geist-mono"
	cfg.Fonts.Family = "Geist Mono"
	cfg.Fonts.Subset = "latin"
	cfg.Fonts.TimeoutSecs = 10
	return cfg
}

// LoadConfig reads config.yaml (or the file named by CONFIG_PATH) on top of
// the built-in defaults and stores the result in AppConfig. A missing file is
// not an error; an unreadable or malformed file is fatal.
func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			AppConfig = cfg
			return cfg
		}
		panic("cannot read config file " + path + ": " + err.Error())
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		panic("cannot parse config file " + path + ": " + err.Error())
	}

	AppConfig = cfg
	return cfg
}

// GetConfig returns the current process-wide configuration.
func GetConfig() Config {
	return AppConfig
}
