package repositories

import (
	"context"
	"time"

	"instacash-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// passwordResetRepository implements PasswordResetRepository interface
type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create creates a new password reset row
func (r *passwordResetRepository) Create(ctx context.Context, reset *models.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

// GetUnusedByTokenHash gets an unused reset row by its token hash
func (r *passwordResetRepository) GetUnusedByTokenHash(ctx context.Context, tokenHash string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	err := r.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		Where("is_used = ?", false).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

// Consume marks the reset row used and updates the user's password hash
// in a single transaction.
func (r *passwordResetRepository) Consume(ctx context.Context, reset *models.PasswordReset, newPasswordHash string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("id = ?", reset.UserID).
			Update("password_hash", newPasswordHash).Error; err != nil {
			return err
		}
		return tx.Model(&models.PasswordReset{}).
			Where("id = ?", reset.ID).
			Update("is_used", true).Error
	})
}

// DeleteExpired deletes used and expired reset rows (cleanup job)
func (r *passwordResetRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_used = ? OR expires_at < ?", true, time.Now()).
		Delete(&models.PasswordReset{})
	return res.RowsAffected, res.Error
}
