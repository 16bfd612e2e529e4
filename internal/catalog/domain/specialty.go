package domain

import "medagenda-backend/internal/resource"

type Specialty struct {
	resource.Model
	ImageURL    string  `json:"imageUrl" gorm:"not null"`
	Name        string  `json:"name" gorm:"uniqueIndex;not null"`
	Description string  `json:"description" gorm:"not null"`
	Price       float64 `json:"price" gorm:"not null"`
}
