package repository

import authdomain "medagenda-backend/internal/auth/domain"

// UserRepository defines data access for the credential store.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByID(id string) (*authdomain.User, error)
	FindByEmail(email string) (*authdomain.User, error)
	FindByName(name string) (*authdomain.User, error)
	FindAll() ([]authdomain.PublicUser, error)
	Update(user *authdomain.User) error
	Delete(id string) error
}
