package internal

import "time"

type Config struct {
	Host              string        `env:"HOST"`
	Port              int           `env:"PORT,required=true"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	RetentionDays     int           `env:"RETENTION_DAYS,default=7"`
	CleanupInterval   time.Duration `env:"CLEANUP_INTERVAL,default=1h"`
	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	LLMBaseURL        string        `env:"LLM_BASE_URL,required=true"`
	LLMAPIKey         string        `env:"LLM_API_KEY,required=true"`
	LLMModel          string        `env:"LLM_MODEL,required=true"`
	LLMTimeout        time.Duration `env:"LLM_TIMEOUT,default=30s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}
