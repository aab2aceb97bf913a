package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Config holds the service-level settings. Storage backends are initialized
// separately so optional ones (Redis, Kafka) can be skipped.
type Config struct {
	Port          string
	AdminUser     string
	AdminPassword string
	JWTSecret     string
	PublicMenuURL string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		AdminUser:     getenv("ADMIN_USER", "admin"),
		AdminPassword: getenv("ADMIN_PASS", "admin"),
		JWTSecret:     getenv("JWT_SECRET", "dev_secret_change_me"),
		PublicMenuURL: getenv("PUBLIC_MENU_URL", "http://localhost:8080/api/menu"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

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

// InitRedis returns nil when REDIS_HOST is unset; the service then runs
// without the menu cache.
func InitRedis() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaWriter returns nil when KAFKA_BROKER is unset; change events are
// then not published.
func NewKafkaWriter(topic string) *kafka.Writer {
	broker := os.Getenv("KAFKA_BROKER")
	if broker == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
