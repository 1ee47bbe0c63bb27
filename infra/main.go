package infra

import (
	"log"

	"github.com/ghrc19/Hed-System/config"
)

type Infra struct {
	Postgres *PostgresClient
	Redis    *RedisClient
	Logger   *LoggerClient
	Minio    *MinioClient
}

var infraInstance *Infra

func InitInfra(cfg *config.Config) *Infra {
	if infraInstance != nil {
		return infraInstance
	}

	postgres := InitPostgresClient(cfg.EnvConfig)
	if postgres == nil {
		panic("Failed to initialize Postgres service")
	}

	redis := InitRedisClient(cfg.EnvConfig)
	if redis == nil {
		panic("Failed to initialize Redis service")
	}

	logger := InitLoggerClient(cfg.EnvConfig)
	if logger == nil {
		panic("Failed to initialize Logger service")
	}

	// MinIO is optional: without it report downloads still work, copies are
	// just not archived.
	minio, err := InitMinioClient(cfg.EnvConfig)
	if err != nil {
		log.Printf("Warning: Failed to initialize MinIO service: %v (report archive disabled)", err)
		minio = nil
	}

	infraInstance = &Infra{
		Postgres: postgres,
		Redis:    redis,
		Logger:   logger,
		Minio:    minio,
	}

	return infraInstance
}
