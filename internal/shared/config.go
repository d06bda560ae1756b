package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SourceStatic = "static"
	SourceMySQL  = "mysql"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	HTTPTimeout time.Duration

	DataSource string
	MySQLDSN   string
	Migrate    bool

	// Empty RedisAddr disables the result cache.
	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	RefreshInterval time.Duration

	FeedBase string
	FeedKey  string
	FeedRPS  int
	Workers  int
}

// Load reads the environment, after applying an optional .env file.
// Variables already set in the environment win over the file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env present but unreadable")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	seconds := func(k string, def int) time.Duration { return time.Duration(atoi(k, def)) * time.Second }

	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		LogLevel:    env("LOG_LEVEL", "info"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		HTTPTimeout: seconds("HTTP_TIMEOUT_SECONDS", 15),

		DataSource: env("DATA_SOURCE", SourceStatic),
		MySQLDSN:   env("MYSQL_DSN", "root:root@tcp(localhost:3306)/localbiz?parseTime=true&charset=utf8mb4&loc=UTC"),
		Migrate:    env("MYSQL_MIGRATE", "true") == "true",

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: env("REDIS_PASSWORD", ""),
		RedisDB:   atoi("REDIS_DB", 0),
		CacheTTL:  seconds("CACHE_TTL_SECONDS", 900),

		RefreshInterval: seconds("REFRESH_INTERVAL_SECONDS", 300),

		FeedBase: env("FEED_BASE_URL", "https://feed.localbiz.mx/v1"),
		FeedKey:  env("FEED_API_KEY", ""),
		FeedRPS:  atoi("FEED_RPS", 5),
		Workers:  atoi("INGEST_WORKERS", 4),
	}
	if c.DataSource != SourceStatic && c.DataSource != SourceMySQL {
		log.Warn().Str("data_source", c.DataSource).Msg("unknown DATA_SOURCE, using static")
		c.DataSource = SourceStatic
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
