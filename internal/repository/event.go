package repository

import (
	"errors"
	"fmt"

	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/model"
	"gorm.io/gorm"
)

type EventRepository interface {
	List(filter dto.EventFilter) ([]model.Event, error)
	GetByID(id string) (model.Event, error)
	Create(event model.Event) (model.Event, error)
	Save(event model.Event) (model.Event, error)
	Delete(event model.Event) error
	ClearAssignee(userID string) error
}

type event struct {
	db *gorm.DB
}

func newEventRepository(db *gorm.DB) EventRepository {
	return &event{
		db: db,
	}
}

func (e *event) List(filter dto.EventFilter) ([]model.Event, error) {
	query := e.db.Preload("User")
	if filter.Search != "" {
		query = query.Where("title LIKE ?", "%"+filter.Search+"%")
	}
	if len(filter.AssignTo) > 0 {
		query = query.Where("assign_to IN ?", filter.AssignTo)
	}

	var events []model.Event
	result := query.Find(&events)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return events, nil
}

func (e *event) GetByID(id string) (model.Event, error) {
	var event model.Event
	result := e.db.First(&event, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Event{}, fmt.Errorf("%w: event %s", dto.ErrNotFound, id)
		}
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) Create(event model.Event) (model.Event, error) {
	result := e.db.Create(&event)
	if result.Error != nil {
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) Save(event model.Event) (model.Event, error) {
	result := e.db.Save(&event)
	if result.Error != nil {
		return model.Event{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return event, nil
}

func (e *event) Delete(event model.Event) error {
	result := e.db.Delete(&event)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

// ClearAssignee nulls out assign_to on every event pointing at the given
// user. Soft deleting a user never fires the DB-level SET NULL action
// because the row is only flagged, so the cascade happens here.
func (e *event) ClearAssignee(userID string) error {
	result := e.db.Model(&model.Event{}).Where("assign_to = ?", userID).Update("assign_to", nil)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
