package repository

import (
	"errors"
	"fmt"

	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	List() ([]model.User, error)
	GetByID(id string) (model.User, error)
	ExistsByName(name string, excludeID string) (bool, error)
	ExistsByEmail(email string, excludeID string) (bool, error)
	Create(user model.User) (model.User, error)
	Save(user model.User) (model.User, error)
	Delete(user model.User) error
}

type user struct {
	db *gorm.DB
}

func newUserRepository(db *gorm.DB) UserRepository {
	return &user{
		db: db,
	}
}

func (u *user) List() ([]model.User, error) {
	var users []model.User
	result := u.db.Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return users, nil
}

func (u *user) GetByID(id string) (model.User, error) {
	var user model.User
	result := u.db.First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.User{}, fmt.Errorf("%w: user %s", dto.ErrNotFound, id)
		}
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

// ExistsByName scans every row, soft-deleted included, so a deleted
// user's name can never be claimed again.
func (u *user) ExistsByName(name string, excludeID string) (bool, error) {
	return u.exists("name = ?", name, excludeID)
}

// ExistsByEmail scans every row, soft-deleted included.
func (u *user) ExistsByEmail(email string, excludeID string) (bool, error) {
	return u.exists("email = ?", email, excludeID)
}

func (u *user) exists(condition string, value string, excludeID string) (bool, error) {
	query := u.db.Unscoped().Model(&model.User{}).Where(condition, value)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	result := query.Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count > 0, nil
}

func (u *user) Create(user model.User) (model.User, error) {
	result := u.db.Create(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) Save(user model.User) (model.User, error) {
	result := u.db.Save(&user)
	if result.Error != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return user, nil
}

func (u *user) Delete(user model.User) error {
	result := u.db.Delete(&user)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
