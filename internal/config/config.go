package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	CacheTTL       time.Duration
	RedisEnabled   bool
}

func Load() Config {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		AllowedOrigins: []string{"http://localhost:5173"},
		CacheTTL:       60 * time.Second,
		RedisEnabled:   os.Getenv("REDIS_HOST") != "",
	}

	if origins := os.Getenv("FRONTEND_ORIGIN"); origins != "" {
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}

	if ttl := os.Getenv("CACHE_TTL_SECONDS"); ttl != "" {
		if seconds, err := strconv.Atoi(ttl); err == nil && seconds > 0 {
			cfg.CacheTTL = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	connStr := "host=" + getenv("DB_HOST", "localhost") +
		" port=" + getenv("DB_PORT", "5432") +
		" user=" + getenv("DB_USER", "postgres") +
		" password=" + getenv("DB_PASSWORD", "postgres") +
		" dbname=" + getenv("DB_NAME", "grubdash") +
		" sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: getenv("REDIS_HOST", "localhost") + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}
