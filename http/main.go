package main

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/config"
	"github.com/ghrc19/Hed-System/entity"
	"github.com/ghrc19/Hed-System/http/controller"
	routes "github.com/ghrc19/Hed-System/http/route"
	infraPkg "github.com/ghrc19/Hed-System/infra"
	"github.com/ghrc19/Hed-System/repository"
	"github.com/ghrc19/Hed-System/utils"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	if err := seedAdminUser(cfg, repo); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)

	log.Printf("HTTP Server started on :%s", cfg.EnvConfig.Server.Port)
	if err := router.Run(":" + cfg.EnvConfig.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdminUser creates the bootstrap operator account when ADMIN_EMAIL is
// configured and no such user exists yet.
func seedAdminUser(cfg *config.Config, repo *repository.Repository) error {
	email := cfg.EnvConfig.Admin.Email
	password := cfg.EnvConfig.Admin.Password
	if email == "" || password == "" {
		return nil
	}

	_, err := repo.UserRepo.FindByEmail(email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	log.Printf("Seeding admin user %s", email)
	return repo.UserRepo.Create(&entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    utils.Today(),
	})
}
