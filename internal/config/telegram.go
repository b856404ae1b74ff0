package config

import (
	"os"
	"strconv"
	"time"
)

type TelegramConfig struct {
	BotToken    string        `yaml:"bot_token"`
	ChatID      int64         `yaml:"chat_id"`
	TopicID     int           `yaml:"topic_id"`
	SendTimeout time.Duration `yaml:"send_timeout"`
	PollTimeout time.Duration `yaml:"poll_timeout"`
}

// Enabled reports whether outbound notifications can be attempted at all.
func (t *TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

func loadTelegramConfig() *TelegramConfig {
	// BOT_TOKEN is the legacy name, still honored.
	token := getEnv("TELEGRAM_BOT_TOKEN", "")
	if token == "" {
		token = getEnv("BOT_TOKEN", "")
	}

	return &TelegramConfig{
		BotToken:    token,
		ChatID:      getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		TopicID:     getEnvAsInt("TELEGRAM_TOPIC_ID", 0),
		SendTimeout: getEnvAsDuration("TELEGRAM_SEND_TIMEOUT", 10*time.Second),
		PollTimeout: getEnvAsDuration("TELEGRAM_POLL_TIMEOUT", 30*time.Second),
	}
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
