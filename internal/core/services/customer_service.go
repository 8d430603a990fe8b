package services

import (
	"context"
	"time"

	"instacash-backend/internal/adapters/persistence/models"
	"instacash-backend/internal/adapters/persistence/repositories"
	"instacash-backend/internal/core/domain"
	"instacash-backend/internal/pkg/logger"
)

// CustomerService handles customer registration business logic
type CustomerService struct {
	customerRepo repositories.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// RegisterCustomerInput represents customer registration input
type RegisterCustomerInput struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	IDNumber        string   `json:"idNumber" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	Gender          string   `json:"gender" validate:"required"`
	DOB             string   `json:"dob" validate:"required"`
	Collateral      string   `json:"collateral"`
	ForcedSaleValue *float64 `json:"forcedSaleValue"`
}

// Register registers a new customer and, when collateral fields are
// present, a linked collateral row. Both writes happen in one
// transaction.
func (s *CustomerService) Register(ctx context.Context, input *RegisterCustomerInput) (*models.Customer, error) {
	dob, err := time.Parse(dateLayout, input.DOB)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	exists, err := s.customerRepo.ExistsByIDNumber(ctx, input.IDNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCustomerExists
	}

	customer := &models.Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		IDNumber:    input.IDNumber,
		Address:     input.Address,
		Gender:      input.Gender,
		DateOfBirth: dob,
	}

	var collateral *models.Collateral
	if input.Collateral != "" && input.ForcedSaleValue != nil {
		if *input.ForcedSaleValue < 0 {
			return nil, domain.ErrNegativeValue
		}
		collateral = &models.Collateral{
			CollateralType:  input.Collateral,
			ForcedSaleValue: *input.ForcedSaleValue,
		}
	}

	if err := s.customerRepo.CreateWithCollateral(ctx, customer, collateral); err != nil {
		return nil, err
	}

	logger.Get().Info().
		Uint("customer_id", customer.ID).
		Bool("with_collateral", collateral != nil).
		Msg("customer registered")

	return customer, nil
}
