package service

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

// Only the millisecond UTC form is accepted; other valid ISO-8601
// variants (no milliseconds, offset instead of Z) are rejected.
var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)

type EventService interface {
	ListEvents(filter dto.EventFilter) ([]dto.EventView, error)
	GetEvent(id string) (model.Event, error)
	CreateEvent(payload dto.EventPayload) (model.Event, error)
	UpdateEvent(id string, payload dto.EventPayload) (model.Event, error)
	DeleteEvent(id string) error
}

type eventService struct {
	eventRepository repository.EventRepository
}

func newEventService(eventRepository repository.EventRepository) EventService {
	return &eventService{
		eventRepository: eventRepository,
	}
}

func (s *eventService) ListEvents(filter dto.EventFilter) ([]dto.EventView, error) {
	events, err := s.eventRepository.List(filter)
	if err != nil {
		return nil, err
	}

	views := make([]dto.EventView, 0, len(events))
	for _, event := range events {
		view := dto.EventView{
			ID:        event.ID,
			Title:     event.Title,
			Start:     event.Start,
			End:       event.End,
			AssignTo:  event.AssignTo,
			CreatedAt: event.CreatedAt,
			UpdatedAt: event.UpdatedAt,
		}
		if event.User != nil {
			view.User = &dto.AssignedUser{
				ID:    event.User.ID,
				Name:  event.User.Name,
				Email: event.User.Email,
			}
		}
		views = append(views, view)
	}

	return views, nil
}

func (s *eventService) GetEvent(id string) (model.Event, error) {
	return s.eventRepository.GetByID(id)
}

func (s *eventService) CreateEvent(payload dto.EventPayload) (model.Event, error) {
	start, end, err := validateEvent(payload)
	if err != nil {
		return model.Event{}, err
	}

	created, err := s.eventRepository.Create(model.Event{
		ID:       uuid.NewString(),
		Title:    payload.Title,
		Start:    start,
		End:      end,
		AssignTo: payload.AssignTo,
	})
	if err != nil {
		return model.Event{}, err
	}

	logrus.Infof("Created event %s", created.ID)
	return created, nil
}

func (s *eventService) UpdateEvent(id string, payload dto.EventPayload) (model.Event, error) {
	start, end, err := validateEvent(payload)
	if err != nil {
		return model.Event{}, err
	}

	event, err := s.eventRepository.GetByID(id)
	if err != nil {
		return model.Event{}, err
	}

	event.Title = payload.Title
	event.Start = start
	event.End = end
	event.AssignTo = payload.AssignTo

	updated, err := s.eventRepository.Save(event)
	if err != nil {
		return model.Event{}, err
	}

	logrus.Infof("Updated event %s", updated.ID)
	return updated, nil
}

func (s *eventService) DeleteEvent(id string) error {
	event, err := s.eventRepository.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.eventRepository.Delete(event); err != nil {
		return err
	}

	logrus.Infof("Deleted event %s", event.ID)
	return nil
}

// validateEvent collects every field failure before anything touches the
// store. Start may be after end; no range rule exists between them.
func validateEvent(payload dto.EventPayload) (time.Time, time.Time, error) {
	var errs dto.ValidationErrors

	if payload.Title == "" {
		errs = append(errs, dto.FieldError{Field: "title", Message: "title is required"})
	} else if len(payload.Title) > 255 {
		errs = append(errs, dto.FieldError{Field: "title", Message: "title must be at most 255 characters"})
	}

	start, ok := parseTimestamp(payload.Start)
	if !ok {
		errs = append(errs, dto.FieldError{Field: "start", Message: "start must be in YYYY-MM-DDTHH:mm:ss.sssZ format"})
	}

	end, ok := parseTimestamp(payload.End)
	if !ok {
		errs = append(errs, dto.FieldError{Field: "end", Message: "end must be in YYYY-MM-DDTHH:mm:ss.sssZ format"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

func parseTimestamp(value string) (time.Time, bool) {
	if !timestampPattern.MatchString(value) {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
