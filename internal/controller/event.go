package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/service"
)

type EventController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type eventController struct {
	eventService service.EventService
}

func newEventController(eventService service.EventService) EventController {
	return &eventController{
		eventService: eventService,
	}
}

func (e *eventController) List(c echo.Context) error {
	filter := dto.EventFilter{
		Search:   c.QueryParam("search"),
		AssignTo: c.QueryParams()["assign_to"],
	}

	events, err := e.eventService.ListEvents(filter)
	if err != nil {
		return respondError(c, err, "Event not found")
	}
	return respond(c, http.StatusOK, events)
}

func (e *eventController) Get(c echo.Context) error {
	event, err := e.eventService.GetEvent(c.Param("id"))
	if err != nil {
		return respondError(c, err, "Event not found")
	}
	return respond(c, http.StatusOK, event)
}

func (e *eventController) Create(c echo.Context) error {
	var payload dto.EventPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	event, err := e.eventService.CreateEvent(payload)
	if err != nil {
		return respondError(c, err, "Event not found")
	}
	return respond(c, http.StatusCreated, event)
}

func (e *eventController) Update(c echo.Context) error {
	var payload dto.EventPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	event, err := e.eventService.UpdateEvent(c.Param("id"), payload)
	if err != nil {
		return respondError(c, err, "Event not found")
	}
	return respond(c, http.StatusOK, event)
}

func (e *eventController) Delete(c echo.Context) error {
	if err := e.eventService.DeleteEvent(c.Param("id")); err != nil {
		return respondError(c, err, "Event not found")
	}
	return respond(c, http.StatusOK, map[string]string{"message": "Success deleted event"})
}
