package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/planora/backend/internal/controller"
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
	controllers := controller.NewControllers(services)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = controller.ErrorHandler
	controllers.Route(e)

	logrus.Infof("Listening on :%s", cfg.Port)
	logrus.Fatal(e.Start(":" + cfg.Port))
}
