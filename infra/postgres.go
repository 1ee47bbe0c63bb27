package infra

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/config"
	"github.com/ghrc19/Hed-System/entity"
)

type PostgresClient struct {
	DB *gorm.DB
}

func InitPostgresClient(env *config.EnvConfig) *PostgresClient {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		env.Postgres.Host,
		env.Postgres.Username,
		env.Postgres.Password,
		env.Postgres.Database,
		env.Postgres.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to Postgres: %v", err)
		return nil
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Course{},
		&entity.Provider{},
		&entity.Period{},
		&entity.Job{},
	)
	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return nil
	}

	return &PostgresClient{DB: db}
}
