package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Backend names accepted by WASHIFY_STORE.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreMongo  = "mongo"
)

type Config struct {
	// Store selects the key-value backend: file, memory, redis or mongo.
	Store    string `env:"WASHIFY_STORE,     default=file"`
	LogLevel string `env:"WASHIFY_LOG_LEVEL, default=info"`
	// LogFile, when set, routes logs to a rotating file.
	LogFile string `env:"WASHIFY_LOG_FILE"`

	File  FileConfig
	Redis RedisConfig
	Mongo MongoConfig
}

type FileConfig struct {
	// Dir is where the per-key JSON documents live.
	Dir string `env:"WASHIFY_DATA_DIR, default=.washify"`
}

type RedisConfig struct {
	Addr string `env:"WASHIFY_REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"WASHIFY_REDIS_DB,   default=0"`
}

type MongoConfig struct {
	URI      string `env:"WASHIFY_MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"WASHIFY_MONGO_DB,  default=washify"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
