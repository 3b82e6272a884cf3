package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/model"
	"github.com/planora/backend/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type UserService interface {
	ListUsers() ([]model.User, error)
	GetUser(id string) (model.User, error)
	CreateUser(payload dto.UserPayload) (model.User, error)
	UpdateUser(id string, payload dto.UserPayload) (model.User, error)
	DeleteUser(id string) (model.User, error)
}

type userService struct {
	userRepository  repository.UserRepository
	eventRepository repository.EventRepository
}

var fieldChecker = validator.New()

func newUserService(userRepository repository.UserRepository, eventRepository repository.EventRepository) UserService {
	return &userService{
		userRepository:  userRepository,
		eventRepository: eventRepository,
	}
}

func (s *userService) ListUsers() ([]model.User, error) {
	return s.userRepository.List()
}

func (s *userService) GetUser(id string) (model.User, error) {
	return s.userRepository.GetByID(id)
}

func (s *userService) CreateUser(payload dto.UserPayload) (model.User, error) {
	if err := s.validateUser(payload, ""); err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	created, err := s.userRepository.Create(model.User{
		ID:       uuid.NewString(),
		Name:     payload.Name,
		Email:    payload.Email,
		Password: string(hash),
	})
	if err != nil {
		return model.User{}, err
	}

	logrus.Infof("Created user %s", created.ID)
	return created, nil
}

func (s *userService) UpdateUser(id string, payload dto.UserPayload) (model.User, error) {
	if err := s.validateUser(payload, id); err != nil {
		return model.User{}, err
	}

	user, err := s.userRepository.GetByID(id)
	if err != nil {
		return model.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	user.Name = payload.Name
	user.Email = payload.Email
	user.Password = string(hash)

	updated, err := s.userRepository.Save(user)
	if err != nil {
		return model.User{}, err
	}

	logrus.Infof("Updated user %s", updated.ID)
	return updated, nil
}

func (s *userService) DeleteUser(id string) (model.User, error) {
	user, err := s.userRepository.GetByID(id)
	if err != nil {
		return model.User{}, err
	}

	if err := s.userRepository.Delete(user); err != nil {
		return model.User{}, err
	}

	// The user row survives as a soft-deleted record, so dependent
	// events are detached explicitly rather than by an FK action.
	if err := s.eventRepository.ClearAssignee(user.ID); err != nil {
		return model.User{}, err
	}

	logrus.Infof("Deleted user %s", user.ID)
	return user, nil
}

// validateUser runs every field rule and collects the failures together.
// Uniqueness lookups cover soft-deleted rows as well; excludeID exempts
// the row being updated. Store failures abort validation outright.
func (s *userService) validateUser(payload dto.UserPayload, excludeID string) error {
	var errs dto.ValidationErrors

	if payload.Name == "" {
		errs = append(errs, dto.FieldError{Field: "name", Message: "name is required"})
	} else {
		taken, err := s.userRepository.ExistsByName(payload.Name, excludeID)
		if err != nil {
			return err
		}
		if taken {
			errs = append(errs, dto.FieldError{Field: "name", Message: "name must be unique"})
		}
	}

	switch {
	case payload.Email == "":
		errs = append(errs, dto.FieldError{Field: "email", Message: "email is required"})
	case fieldChecker.Var(payload.Email, "email") != nil:
		errs = append(errs, dto.FieldError{Field: "email", Message: "email is invalid"})
	default:
		taken, err := s.userRepository.ExistsByEmail(payload.Email, excludeID)
		if err != nil {
			return err
		}
		if taken {
			errs = append(errs, dto.FieldError{Field: "email", Message: "email must be unique"})
		}
	}

	if len(payload.Password) < 6 {
		errs = append(errs, dto.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
