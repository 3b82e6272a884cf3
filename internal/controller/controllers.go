package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/planora/backend/internal/service"
)

type Controllers interface {
	User() UserController
	Event() EventController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	userController  UserController
	eventController EventController
	infoController  InfoController
}

func NewControllers(services service.Services) Controllers {
	userController := newUserController(services.User())
	eventController := newEventController(services.Event())
	infoController := newInfoController()
	return &controllers{
		userController:  userController,
		eventController: eventController,
		infoController:  infoController,
	}
}

func (c controllers) User() UserController {
	return c.userController
}

func (c controllers) Event() EventController {
	return c.eventController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.GET("/", c.infoController.Info)

	users := e.Group("/api/users")
	users.GET("", c.userController.List)
	users.GET("/:id", c.userController.Get)
	users.POST("", c.userController.Create)
	users.PUT("/:id", c.userController.Update)
	users.DELETE("/:id", c.userController.Delete)

	events := e.Group("/api/events")
	events.GET("", c.eventController.List)
	events.GET("/:id", c.eventController.Get)
	events.POST("", c.eventController.Create)
	events.PUT("/:id", c.eventController.Update)
	events.DELETE("/:id", c.eventController.Delete)
}
