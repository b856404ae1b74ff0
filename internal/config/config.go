package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      *AppConfig      `yaml:"app"`
	Database *DatabaseConfig `yaml:"database"`
	Telegram *TelegramConfig `yaml:"telegram"`
	Security *SecurityConfig `yaml:"security"`
}

type AppConfig struct {
	Name      string `yaml:"name"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	StaticDir string `yaml:"static_dir"`
	TLSCert   string `yaml:"tls_cert"`
	TLSKey    string `yaml:"tls_key"`
}

func Load() (*Config, error) {
	config := &Config{
		App:      loadAppConfig(),
		Database: loadDatabaseConfig(),
		Telegram: loadTelegramConfig(),
		Security: loadSecurityConfig(),
	}

	// TLS is all-or-nothing: a lone cert or key is a misconfiguration,
	// not a cue to fall back to plain HTTP.
	if (config.App.TLSCert == "") != (config.App.TLSKey == "") {
		return nil, errors.New("config: set both TLS_CERT_FILE and TLS_KEY_FILE, or neither")
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:      getEnv("APP_NAME", "rideform"),
		Host:      getEnv("APP_HOST", "127.0.0.1"),
		Port:      getEnvAsInt("APP_PORT", 8000),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		StaticDir: getEnv("STATIC_DIR", "static"),
		TLSCert:   getEnv("TLS_CERT_FILE", ""),
		TLSKey:    getEnv("TLS_KEY_FILE", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}
