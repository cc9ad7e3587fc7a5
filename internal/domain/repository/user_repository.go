package repository

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// UserRepository persistence port for cafe accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}
