package service

import (
	"github.com/planora/backend/internal/repository"
)

type Services interface {
	User() UserService
	Event() EventService
}

type services struct {
	userService  UserService
	eventService EventService
}

func NewServices(repositories repository.Repositories) Services {
	userService := newUserService(repositories.User(), repositories.Event())
	eventService := newEventService(repositories.Event())
	return &services{
		userService:  userService,
		eventService: eventService,
	}
}

func (s services) User() UserService {
	return s.userService
}

func (s services) Event() EventService {
	return s.eventService
}
