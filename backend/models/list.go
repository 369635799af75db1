package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// List is a user-owned copy of a problem template. TemplateVersion is fixed
// at creation; lists are deprecated, never hard-deleted.
type List struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null" json:"-"`
	Name            string    `gorm:"not null" json:"name"`
	TemplateVersion string    `gorm:"not null" json:"templateVersion"`
	Deprecated      bool      `gorm:"not null;default:false" json:"deprecated"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (l *List) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
