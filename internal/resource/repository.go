package resource

import (
	"errors"

	"gorm.io/gorm"
)

// Store defines the data access every resource handler works against.
// Lookups return (nil, nil) when no row matches.
type Store[T any] interface {
	FindByID(id string) (*T, error)
	FindBy(column, value string) (*T, error)
	List() ([]T, error)
	Create(entity *T) error
	Save(entity *T) error
	Delete(id string) error
}

// Repository is the gorm-backed Store shared by all catalog entities.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) FindByID(id string) (*T, error) {
	return r.FindBy("id", id)
}

// FindBy looks an entity up by a single column. The column name comes
// from handler configuration, never from request input.
func (r *Repository[T]) FindBy(column, value string) (*T, error) {
	var entity T
	err := r.db.Where(column+" = ?", value).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) List() ([]T, error) {
	var entities []T
	err := r.db.Order("created_at DESC").Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

func (r *Repository[T]) Save(entity *T) error {
	return r.db.Save(entity).Error
}

func (r *Repository[T]) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(new(T)).Error
}
