package config

import (
    "log"
    "os"

    "github.com/joho/godotenv"
)

var (
    PostgresHost     string
    PostgresPort     string
    PostgresUser     string
    PostgresPassword string
    PostgresDB       string

    RedisAddress  string
    RedisPassword string

    JWTSecret       string
    AdminLogin      string
    AdminPassword   string
    CorsOrigins     string
    ServerPort      string
    GinMode         string
)

// LoadEnv loads environment variables from the .env file if present and fills the
// package-level configuration values
func LoadEnv() {
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found, using environment variables")
    }

    PostgresHost = getEnv("POSTGRES_HOST", "localhost")
    PostgresPort = getEnv("POSTGRES_PORT", "5432")
    PostgresUser = getEnv("POSTGRES_USER", "postgres")
    PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
    PostgresDB = getEnv("POSTGRES_DB", "enrollment")

    RedisAddress = getEnv("REDIS_ADDRESS", "localhost:6379")
    RedisPassword = getEnv("REDIS_PASSWORD", "")

    JWTSecret = getEnv("JWT_SECRET", "change-me-in-production")
    AdminLogin = getEnv("ADMIN_LOGIN", "admin")
    AdminPassword = getEnv("ADMIN_PASSWORD", "")
    CorsOrigins = getEnv("CORS_ORIGINS", "http://localhost:3000")
    ServerPort = getEnv("SERVER_PORT", "8080")
    GinMode = getEnv("GIN_MODE", "debug")
}

func getEnv(key, fallback string) string {
    if value, ok := os.LookupEnv(key); ok && value != "" {
        return value
    }
    return fallback
}
