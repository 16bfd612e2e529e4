package domain

import "medagenda-backend/internal/resource"

type Medic struct {
	resource.Model
	ImageURL  string `json:"imageUrl" gorm:"not null"`
	Name      string `json:"name" gorm:"not null"`
	Specialty string `json:"specialty" gorm:"not null"`
	CRM       string `json:"crm" gorm:"uniqueIndex;not null"`
}
