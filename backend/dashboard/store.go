package dashboard

import (
	"errors"

	"codeclimb/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store exposes the reads the engine needs over the list store, the problem
// catalog and the attempt log.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindOwnedList(userID, listID uuid.UUID) (*models.List, error) {
	var list models.List
	err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (s *Store) ListsOwnedByUser(userID uuid.UUID) ([]models.List, error) {
	var lists []models.List
	err := s.db.Where("user_id = ?", userID).Order("updated_at desc").Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

// FindMostRecentListActivity returns the list owning the user's most
// recently updated attempt entry, or nil when the user has no attempts.
func (s *Store) FindMostRecentListActivity(userID uuid.UUID) (*uuid.UUID, error) {
	var entry models.AttemptEntry
	err := s.db.Where("user_id = ?", userID).Order("updated_at desc, id desc").First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry.ListID, nil
}

func (s *Store) ListProblems(templateVersion string) ([]models.Problem, error) {
	var problems []models.Problem
	err := s.db.Where("template_version = ?", templateVersion).Order("order_index asc").Find(&problems).Error
	if err != nil {
		return nil, err
	}
	return problems, nil
}

// AttemptsInScope loads every attempt entry the scope covers. With a list
// filter this is the entries of that single list; without one it is the
// entries of all the user's lists on templateVersion.
func (s *Store) AttemptsInScope(userID uuid.UUID, templateVersion string, listID *uuid.UUID) ([]models.AttemptEntry, error) {
	var entries []models.AttemptEntry
	q := s.db.Where("attempt_entries.user_id = ?", userID)
	if listID != nil {
		q = q.Where("attempt_entries.list_id = ?", *listID)
	} else {
		q = q.Joins("JOIN lists ON lists.id = attempt_entries.list_id").
			Where("lists.user_id = ? AND lists.template_version = ?", userID, templateVersion)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) FindUser(userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Where("id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
