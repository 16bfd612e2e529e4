package domain

import "medagenda-backend/internal/resource"

type Clinic struct {
	resource.Model
	Name    string `json:"name" gorm:"uniqueIndex;not null"`
	Address string `json:"address" gorm:"not null"`
	MapURL  string `json:"mapUrl" gorm:"not null"`
}
