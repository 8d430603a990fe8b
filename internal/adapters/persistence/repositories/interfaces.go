package repositories

import (
	"context"

	"instacash-backend/internal/adapters/persistence/models"
)

// CustomerRepository defines customer repository interface
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	CreateWithCollateral(ctx context.Context, customer *models.Customer, collateral *models.Collateral) error
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
	ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error)
	GetCollaterals(ctx context.Context, customerID uint) ([]*models.Collateral, error)
}

// LoanRepository defines loan repository interface
type LoanRepository interface {
	Create(ctx context.Context, loan *models.Loan) error
	ListByCustomerID(ctx context.Context, customerID uint) ([]*models.Loan, error)
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PasswordResetRepository defines password reset repository interface
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *models.PasswordReset) error
	GetUnusedByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error)
	Consume(ctx context.Context, reset *models.PasswordReset, newPasswordHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
