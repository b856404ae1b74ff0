package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	Collection     string        `yaml:"collection"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:       getEnv("MONGO_DB", "ride"),
		Collection:     getEnv("MONGO_COLLECTION", "requests"),
		MaxPoolSize:    getEnvAsInt("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:    getEnvAsInt("MONGO_MIN_POOL_SIZE", 5),
		ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:  getEnvAsDuration("MONGO_SOCKET_TIMEOUT", 30*time.Second),
	}
}
