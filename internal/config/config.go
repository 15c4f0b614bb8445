package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Name    string
	Version string
	Port    string
}

type JWTConfig struct {
	Secret             string
	Algorithm          string
	AccessTokenExpiry  int // seconds
	RefreshTokenExpiry int // seconds
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type RedisConfig struct {
	Host string
	Port string
}

type CacheConfig struct {
	JTITokenExpiry  int // blocklist TTL, seconds
	DocsCacheExpiry int // listing cache TTL, seconds
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		App: AppConfig{
			Name:    getenv("PROJECT_NAME", "doc-similarity-api"),
			Version: getenv("VERSION", "0.1.0"),
			Port:    getenv("PORT", "8080"),
		},
		JWT: JWTConfig{
			Secret:             os.Getenv("JWT_SECRET"),
			Algorithm:          getenv("JWT_ALGORITHM", "HS256"),
			AccessTokenExpiry:  getenvInt("ACCESS_TOKEN_EXPIRY", 3600),
			RefreshTokenExpiry: getenvInt("REFRESH_TOKEN_EXPIRY", 3600*24*2),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host: getenv("REDIS_HOST", "localhost"),
			Port: getenv("REDIS_PORT", "6379"),
		},
		Cache: CacheConfig{
			JTITokenExpiry:  getenvInt("JTI_TOKEN_EXPIRY", 3600),
			DocsCacheExpiry: getenvInt("DOCS_CACHE_EXPIRY", 60),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
