package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Admin    AdminConfig    `yaml:"admin"`
	Upload   UploadConfig   `yaml:"upload"`
	Log      LogConfig      `yaml:"log"`
}

type ServerConfig struct {
	BindAddress string `yaml:"bind_address"`
	TLSDomains  string `yaml:"tls_domains"` // comma separated; enables autotls when set
	SessionKey  string `yaml:"session_key"`
	Debug       bool   `yaml:"debug"`
	CORSOrigins string `yaml:"cors_origins"`
}

type DatabaseConfig struct {
	// Driver is one of "mysql", "postgres" or "sqlite".
	Driver       string `yaml:"driver"`
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
}

type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type UploadConfig struct {
	MaxImageSize int64 `yaml:"max_image_size"`
	ThumbSize    uint  `yaml:"thumb_size"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxAgeDays int    `yaml:"max_age_days"`
	MaxBackups int    `yaml:"max_backups"`
}

// Load reads the optional yaml config file, then applies environment
// overrides and defaults. No package state is kept - the caller owns
// the returned struct.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	readEnvString("BIND_ADDRESS", &cfg.Server.BindAddress)
	readEnvString("TLS_DOMAINS", &cfg.Server.TLSDomains)
	readEnvString("SESSION_KEY", &cfg.Server.SessionKey)
	readEnvString("CORS_ORIGINS", &cfg.Server.CORSOrigins)
	readEnvBool("DEBUG_MODE", &cfg.Server.Debug)
	readEnvString("DB_DRIVER", &cfg.Database.Driver)
	readEnvString("DB_DSN", &cfg.Database.DSN)
	readEnvInt("DB_MAX_OPEN_CONNS", &cfg.Database.MaxOpenConns)
	readEnvInt("DB_MAX_IDLE_CONNS", &cfg.Database.MaxIdleConns)
	readEnvString("ADMIN_USERNAME", &cfg.Admin.Username)
	readEnvString("ADMIN_PASSWORD", &cfg.Admin.Password)
	readEnvString("LOG_LEVEL", &cfg.Log.Level)
	readEnvString("LOG_FILE", &cfg.Log.File)

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (c *Config) applyDefaults() {
	if c.Server.BindAddress == "" {
		c.Server.BindAddress = "0.0.0.0:8080"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = "prompt-techniques.db"
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Admin.Username == "" {
		c.Admin.Username = "admin"
	}
	if c.Upload.MaxImageSize <= 0 {
		c.Upload.MaxImageSize = 10 << 20 // 10 MB
	}
	if c.Upload.ThumbSize == 0 {
		c.Upload.ThumbSize = 640
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("database dsn is required for driver %q", c.Database.Driver)
	}
	return nil
}

func readEnvString(name string, value *string) {
	if v, ok := os.LookupEnv(name); ok {
		*value = v
	}
}

func readEnvBool(name string, value *bool) {
	if v, ok := os.LookupEnv(name); ok {
		*value = v == "1" || v == "true" || v == "yes"
	}
}

func readEnvInt(name string, value *int) {
	if v, ok := os.LookupEnv(name); ok {
		if i, err := strconv.Atoi(v); err == nil {
			*value = i
		}
	}
}
