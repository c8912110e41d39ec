package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIBaseURL is the root of the remote ParkMate API, including any path
	// prefix. Every endpoint path is appended to it verbatim.
	APIBaseURL string `env:"API_BASE_URL, default=http://localhost:5000/api"`
	Env        string `env:"ENV,          default=development"`
	LogLevel   string `env:"LOG_LEVEL,    default=info"`

	Shell   ShellConfig
	Session SessionConfig
	Redis   RedisConfig
}

type ShellConfig struct {
	Addr string `env:"SHELL_ADDR, default=:3000"`
}

type SessionConfig struct {
	// Backend selects where the session lives: file, memory, or redis.
	Backend string `env:"SESSION_BACKEND, default=file"`
	// Path is the session file location for the file backend.
	Path string `env:"SESSION_FILE, default=.parkmate/session.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
