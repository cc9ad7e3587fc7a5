package repository

import "github.com/sarvcafe/cafepos-api/internal/domain/entity"

// CustomerRepository persistence port for loyalty customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	ListByUser(userID string) ([]*entity.Customer, error)
}
