package domain

import "medagenda-backend/internal/resource"

// Schedule is an appointment booked by a user. Clinic and Specialty
// reference the catalog entities by name.
type Schedule struct {
	resource.Model
	Name      string  `json:"name" gorm:"not null"`
	Email     string  `json:"email" gorm:"not null"`
	Phone     string  `json:"phone" gorm:"not null"`
	Clinic    string  `json:"clinic" gorm:"not null"`
	Specialty string  `json:"specialty" gorm:"not null"`
	Date      string  `json:"date" gorm:"not null"`
	Hour      string  `json:"hour" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"`
	UserID    string  `json:"userId" gorm:"index;not null"`
}
