package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Customer & Loan Tables
// ============================================================

// Customer represents customers table
type Customer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	IDNumber    string    `gorm:"uniqueIndex;size:20;not null" json:"id_number"`
	Address     string    `gorm:"size:200;not null" json:"address"`
	Gender      string    `gorm:"size:10;not null" json:"gender"`
	DateOfBirth time.Time `gorm:"type:date;not null" json:"date_of_birth"`

	// Relations
	Loans       []Loan       `gorm:"foreignKey:CustomerID" json:"loans,omitempty"`
	Collaterals []Collateral `gorm:"foreignKey:CustomerID" json:"collaterals,omitempty"`
}

func (Customer) TableName() string {
	return "customers"
}

// Collateral represents collaterals table
type Collateral struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	CustomerID      uint    `gorm:"not null;index" json:"customer_id"`
	CollateralType  string  `gorm:"size:100;not null" json:"collateral_type"`
	ForcedSaleValue float64 `gorm:"not null" json:"forced_sale_value"`
}

func (Collateral) TableName() string {
	return "collaterals"
}

// Loan represents loans table
type Loan struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	CustomerID       uint      `gorm:"not null;index" json:"customer_id"`
	LoanAmount       float64   `gorm:"not null" json:"loan_amount"`
	InterestRate     float64   `gorm:"not null" json:"interest_rate"`
	LoanPeriodMonths int       `gorm:"not null" json:"loan_period_months"`
	StartDate        time.Time `gorm:"type:date;not null" json:"start_date"`
}

func (Loan) TableName() string {
	return "loans"
}

// ============================================================
// Auth Tables
// ============================================================

// User represents users table
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	FirstName    string    `gorm:"size:50;not null" json:"first_name"`
	LastName     string    `gorm:"size:50;not null" json:"last_name"`
	Role         string    `gorm:"size:20;default:'customer'" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}

// PasswordReset represents password_resets table. Only the SHA256 hash
// of the reset token is stored; the raw token is returned once and never
// persisted.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;size:100;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsUsed    bool      `gorm:"default:false" json:"is_used"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (PasswordReset) TableName() string {
	return "password_resets"
}

func (pr *PasswordReset) IsExpired() bool {
	return time.Now().After(pr.ExpiresAt)
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Customer{},
		&Collateral{},
		&Loan{},
		&User{},
		&PasswordReset{},
	)
}
