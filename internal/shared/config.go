package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	MigrationsDir string
	SeedWorkers   int
	CacheTTL      time.Duration
	RateRPS       int
	RateBurst     int
}

func Load() Config {
	// .env is a dev convenience; absence is not an error
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		// multiStatements so the seeder can run a whole migration file
		// in one Exec
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotelbook?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPass:     env("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		MigrationsDir: env("MIGRATIONS_DIR", "migrations"),
		SeedWorkers:   atoi("SEED_WORKERS", 4),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		RateRPS:       atoi("RATE_LIMIT_RPS", 50),
		RateBurst:     atoi("RATE_LIMIT_BURST", 100),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
