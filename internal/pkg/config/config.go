package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=4000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
	Media MediaConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blog_platform"`

	// Startup-only resilience: bounded connect retries with a fixed delay.
	ConnectAttempts  int `env:"MONGO_CONNECT_ATTEMPTS,    default=5"`
	ConnectDelaySecs int `env:"MONGO_CONNECT_DELAY_SECS,  default=5"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MediaConfig struct {
	Region   string `env:"MEDIA_S3_REGION,   default=us-east-1"`
	Bucket   string `env:"MEDIA_S3_BUCKET,   default=blog-media"`
	Endpoint string `env:"MEDIA_S3_ENDPOINT"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
