package config

import (
	"os"
	"strconv"
	"strings"
)

type EnvConfig struct {
	Postgres struct {
		Host     string
		Port     string
		Database string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		Database int
	}
	JWT struct {
		SecretKey string
		Expire    int // seconds
	}
	CORS struct {
		AllowDomains string
	}
	Minio struct {
		Endpoint     string
		RootUser     string
		RootPassword string
		UseSSL       bool
		ReportBucket string
	}
	Otel struct {
		OTLPEndpoint string
		ServiceName  string
	}
	Admin struct {
		Email    string
		Password string
	}
	Server struct {
		Port string
	}
	Environment struct {
		Mode string
	}
}

func LoadEnvConfig() *EnvConfig {
	var config EnvConfig

	// Postgres
	config.Postgres.Host = getEnv("PGPOOL_HOST", "localhost")
	config.Postgres.Port = getEnv("PGPOOL_PORT", "5432")
	config.Postgres.Database = getEnv("PGPOOL_DB", "hed_system")
	config.Postgres.Username = getEnv("PGPOOL_USER", "postgres")
	config.Postgres.Password = os.Getenv("PGPOOL_PASSWORD")

	// Redis
	config.Redis.Host = getEnv("REDIS_HOST", "localhost")
	config.Redis.Port = getEnv("REDIS_PORT", "6379")
	config.Redis.Password = os.Getenv("REDIS_PASSWORD")
	config.Redis.Database, _ = strconv.Atoi(os.Getenv("REDIS_DB"))

	// JWT
	config.JWT.SecretKey = os.Getenv("JWT_SECRET_KEY")
	if val := os.Getenv("JWT_EXPIRE"); val != "" {
		config.JWT.Expire, _ = strconv.Atoi(val)
	}
	if config.JWT.Expire == 0 {
		config.JWT.Expire = 3600 * 24 * 7
	}

	config.CORS.AllowDomains = os.Getenv("ALLOWED_DOMAINS")

	// MinIO (optional: report archive is disabled when no endpoint is set)
	config.Minio.Endpoint = os.Getenv("MINIO_ENDPOINT")
	config.Minio.RootUser = os.Getenv("MINIO_ROOT_USER")
	config.Minio.RootPassword = os.Getenv("MINIO_ROOT_PASSWORD")
	config.Minio.UseSSL = strings.EqualFold(os.Getenv("MINIO_USE_SSL"), "true")
	config.Minio.ReportBucket = getEnv("MINIO_REPORT_BUCKET", "reports")

	// OpenTelemetry log export
	otlpEndpoint := os.Getenv("OTLP_ENDPOINT")
	otlpEndpoint = strings.TrimPrefix(otlpEndpoint, "https://")
	otlpEndpoint = strings.TrimPrefix(otlpEndpoint, "http://")
	config.Otel.OTLPEndpoint = otlpEndpoint
	config.Otel.ServiceName = getEnv("SERVICE_NAME", "hed-system")

	// Bootstrap operator account, created at startup when missing
	config.Admin.Email = os.Getenv("ADMIN_EMAIL")
	config.Admin.Password = os.Getenv("ADMIN_PASSWORD")

	config.Server.Port = getEnv("SERVER_PORT", "8080")

	config.Environment.Mode = getEnv("DEPLOY_ENV", "development")

	return &config
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
