package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// AttemptEntry is one row of the append-only attempt history for a
// (list, problem) pair. A retry is a new entry; editing an existing entry
// keeps its id and bumps UpdatedAt. The entry with the greatest UpdatedAt
// is the problem's current state.
type AttemptEntry struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null" json:"-"`
	ListID          uuid.UUID       `gorm:"type:uuid;index;not null" json:"listId"`
	Neet250ID       int             `gorm:"column:neet250_id;not null" json:"neet250Id"`
	Solved          *bool           `json:"solved"`
	DateSolved      *datatypes.Date `json:"-"`
	TimeMinutes     *int            `json:"timeMinutes"`
	Attempts        *int            `json:"attempts"`
	Confidence      *Confidence     `json:"confidence"`
	TimeComplexity  *string         `json:"timeComplexity"`
	SpaceComplexity *string         `json:"spaceComplexity"`
	Notes           *string         `json:"notes"`
	ProblemURL      *string         `gorm:"column:problem_url" json:"problemUrl"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (AttemptEntry) TableName() string {
	return "attempt_entries"
}

func (a *AttemptEntry) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Meaningful reports whether the entry carries at least one substantive
// field. Entries failing this predicate are rejected on write and ignored
// by activity-date derivations.
func (a *AttemptEntry) Meaningful() bool {
	return a.Solved != nil ||
		a.DateSolved != nil ||
		a.TimeMinutes != nil ||
		a.Attempts != nil ||
		a.Confidence != nil ||
		a.TimeComplexity != nil ||
		a.SpaceComplexity != nil ||
		(a.Notes != nil && strings.TrimSpace(*a.Notes) != "") ||
		(a.ProblemURL != nil && strings.TrimSpace(*a.ProblemURL) != "")
}

// SolvedDate returns DateSolved normalized to a UTC midnight time, or the
// zero time when unset.
func (a *AttemptEntry) SolvedDate() time.Time {
	if a.DateSolved == nil {
		return time.Time{}
	}
	t := time.Time(*a.DateSolved)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
