package repositories

import (
	"context"

	"instacash-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// customerRepository implements CustomerRepository interface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create creates a new customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// CreateWithCollateral creates a customer and an optional collateral row
// in a single transaction. Both succeed or both are rolled back.
func (r *customerRepository) CreateWithCollateral(ctx context.Context, customer *models.Customer, collateral *models.Collateral) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(customer).Error; err != nil {
			return err
		}
		if collateral != nil {
			collateral.CustomerID = customer.ID
			if err := tx.Create(collateral).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets a customer by ID
func (r *customerRepository) GetByID(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ExistsByIDNumber checks if a customer id number is already registered
func (r *customerRepository) ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id_number = ?", idNumber).Count(&count).Error
	return count > 0, err
}

// GetCollaterals gets all collateral rows for a customer
func (r *customerRepository) GetCollaterals(ctx context.Context, customerID uint) ([]*models.Collateral, error) {
	var collaterals []*models.Collateral
	err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).Find(&collaterals).Error
	if err != nil {
		return nil, err
	}
	return collaterals, nil
}
