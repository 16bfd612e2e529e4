package repository

import (
	"medagenda-backend/internal/resource"
	"medagenda-backend/internal/schedule/domain"

	"gorm.io/gorm"
)

// ScheduleRepository extends the generic resource store with the
// per-user listing the logged-schedules endpoint needs.
type ScheduleRepository struct {
	*resource.Repository[domain.Schedule]
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{
		Repository: resource.NewRepository[domain.Schedule](db),
		db:         db,
	}
}

func (r *ScheduleRepository) FindByUserID(userID string) ([]domain.Schedule, error) {
	var schedules []domain.Schedule
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
