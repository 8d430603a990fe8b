package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Customer / loan errors
var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCustomerExists    = errors.New("customer id number already registered")
	ErrInvalidDate       = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidAmount     = errors.New("loan amount must be greater than zero")
	ErrInvalidPeriod     = errors.New("loan period must be at least one month")
	ErrLoanLimitExceeded = errors.New("loan amount exceeds collateral loan limit")
	ErrNegativeValue     = errors.New("forced sale value must not be negative")
)

// Auth errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password does not meet strength policy")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// Document errors
var (
	ErrNoDocuments = errors.New("no documents supplied")
)
