package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sarvcafe/cafepos-api/internal/application/dto"
	"github.com/sarvcafe/cafepos-api/internal/domain"
	"github.com/sarvcafe/cafepos-api/internal/domain/entity"
	"github.com/sarvcafe/cafepos-api/internal/domain/repository"
	"github.com/sarvcafe/cafepos-api/pkg/phone"
)

// CustomerUseCase read-mostly loyalty customers.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create adds a customer. An invalid phone is stored as absent, matching sale
// recording.
func (uc *CustomerUseCase) Create(userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	normalized := ""
	if in.Phone != "" {
		if p, ok := phone.Normalize(in.Phone); ok {
			normalized = p
		}
	}
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      in.Name,
		Phone:     normalized,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List returns the tenant's customers.
func (uc *CustomerUseCase) List(userID string) ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		LoyaltyPoints: c.LoyaltyPoints,
		CreatedAt:     c.CreatedAt,
	}
}
