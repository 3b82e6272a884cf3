package main

import (
	"github.com/joho/godotenv"
	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/repository"
	"github.com/planora/backend/internal/service"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment")
	}
	cfg := dto.NewConfig()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Panic(err)
	}

	repositories := repository.NewRepositories(db)
	services := service.NewServices(repositories)

	seeds := []dto.UserPayload{
		{Name: "John Doe", Email: "john@example.com", Password: "password"},
		{Name: "Jane Doe", Email: "jane@example.com", Password: "password"},
	}

	for _, payload := range seeds {
		user, err := services.User().CreateUser(payload)
		if err != nil {
			logrus.Warnf("Skipping %s: %v", payload.Email, err)
			continue
		}
		logrus.Infof("Seeded user %s (%s)", user.Name, user.ID)
	}
}
