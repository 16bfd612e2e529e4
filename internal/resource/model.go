package resource

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model is the base embedded by every catalog entity.
type Model struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
