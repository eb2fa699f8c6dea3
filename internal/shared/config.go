package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	AmqpURL     string
	SMSBase     string
	SMSKey      string
	JWTSecret   string
	JWTTTL      time.Duration
	BcryptCost  int
	OtpTTL      time.Duration
	CacheTTL    time.Duration
	SeedWorkers int
}

func Load() Config {
	// best-effort; production uses real env vars
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MySQLDSN:    env("MYSQL_DSN", "root:root@tcp(localhost:3306)/staybook?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		AmqpURL:     env("AMQP_URL", ""),
		SMSBase:     env("SMS_BASE_URL", "https://sms-gateway.local/v1"),
		SMSKey:      env("SMS_API_KEY", ""),
		JWTSecret:   env("JWT_SECRET", ""),
		JWTTTL:      time.Duration(atoi("JWT_TTL_MINUTES", 60)) * time.Minute,
		BcryptCost:  atoi("BCRYPT_COST", 10),
		OtpTTL:      time.Duration(atoi("OTP_TTL_SECONDS", 300)) * time.Second,
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
	if c.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty; tokens are signed with an insecure default")
		c.JWTSecret = "dev-secret"
	}
	if c.SMSKey == "" {
		log.Warn().Msg("SMS_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
