package services

import (
	"context"
	"errors"
	"math"
	"time"

	"instacash-backend/internal/adapters/persistence/models"
	"instacash-backend/internal/adapters/persistence/repositories"
	"instacash-backend/internal/core/domain"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// LoanService handles loan calculations and loan applications
type LoanService struct {
	loanRepo     repositories.LoanRepository
	customerRepo repositories.CustomerRepository
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository, customerRepo repositories.CustomerRepository) *LoanService {
	return &LoanService{
		loanRepo:     loanRepo,
		customerRepo: customerRepo,
	}
}

// CalculateLoanInput represents schedule calculation input
type CalculateLoanInput struct {
	Amount       float64 `json:"amount" validate:"required"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
	Months       int     `json:"months" validate:"required"`
	StartDate    string  `json:"startDate" validate:"required"`
}

// ScheduleEntry represents one repayment period
type ScheduleEntry struct {
	PaymentDate  string  `json:"payment_date"`
	Principal    float64 `json:"principal"`
	Interest     float64 `json:"interest"`
	TotalPayment float64 `json:"total_payment"`
}

// Summary represents aggregate figures for a flat-rate loan
type Summary struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalPayment   float64 `json:"total_payment"`
	TotalInterest  float64 `json:"total_interest"`
}

// Schedule generates the flat-rate repayment schedule. The principal
// portion is amount/months; the interest portion is one twelfth of the
// annual rate applied to the original principal, charged identically
// every period. No persistence occurs.
func (s *LoanService) Schedule(input *CalculateLoanInput) ([]ScheduleEntry, error) {
	if input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if input.Months < 1 {
		return nil, domain.ErrInvalidPeriod
	}

	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}

	monthlyPrincipal := input.Amount / float64(input.Months)
	monthlyInterest := input.Amount * input.InterestRate / 100 / 12

	schedule := make([]ScheduleEntry, 0, input.Months)
	for i := 0; i < input.Months; i++ {
		schedule = append(schedule, ScheduleEntry{
			PaymentDate:  addMonths(startDate, i).Format(dateLayout),
			Principal:    round2(monthlyPrincipal),
			Interest:     round2(monthlyInterest),
			TotalPayment: round2(monthlyPrincipal + monthlyInterest),
		})
	}

	return schedule, nil
}

// Summarize returns the aggregate figures for a flat-rate loan with
// the given annual rate
func (s *LoanService) Summarize(amount, rate float64, months int) *Summary {
	monthlyInterest := amount * rate / 100 / 12
	monthlyPayment := amount/float64(months) + monthlyInterest

	return &Summary{
		MonthlyPayment: round2(monthlyPayment),
		TotalPayment:   round2(monthlyPayment * float64(months)),
		TotalInterest:  round2(monthlyInterest * float64(months)),
	}
}

// CollateralLimit returns the maximum loan amount backed by a piece of
// collateral, floored to the nearest 1000. Land and houses lend up to
// half the forced sale value, cars a quarter; cheques lend against half
// the monthly income.
func (s *LoanService) CollateralLimit(collateralType string, forcedSaleValue, monthlyIncome float64) float64 {
	var limit float64

	switch collateralType {
	case "land", "house":
		limit = forcedSaleValue * 0.5
	case "car":
		limit = forcedSaleValue * 0.25
	case "cheque":
		limit = monthlyIncome * 0.5
	}

	return math.Floor(limit/1000) * 1000
}

// ApplyLoanInput represents loan application input
type ApplyLoanInput struct {
	CustomerID   uint    `json:"customerId" validate:"required"`
	Amount       float64 `json:"amount" validate:"required"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
	PeriodMonths int     `json:"periodMonths" validate:"required"`
	StartDate    string  `json:"startDate" validate:"required"`
}

// Apply records a loan for an existing customer. When the customer has
// collateral on file, the amount is checked against the combined
// collateral limit.
func (s *LoanService) Apply(ctx context.Context, input *ApplyLoanInput) (*models.Loan, *Summary, error) {
	if input.Amount <= 0 {
		return nil, nil, domain.ErrInvalidAmount
	}
	if input.PeriodMonths < 1 {
		return nil, nil, domain.ErrInvalidPeriod
	}

	startDate, err := time.Parse(dateLayout, input.StartDate)
	if err != nil {
		return nil, nil, domain.ErrInvalidDate
	}

	if _, err := s.customerRepo.GetByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, domain.ErrCustomerNotFound
		}
		return nil, nil, err
	}

	collaterals, err := s.customerRepo.GetCollaterals(ctx, input.CustomerID)
	if err != nil {
		return nil, nil, err
	}

	var limit float64
	for _, col := range collaterals {
		limit += s.CollateralLimit(col.CollateralType, col.ForcedSaleValue, 0)
	}
	if limit > 0 && input.Amount > limit {
		return nil, nil, domain.ErrLoanLimitExceeded
	}

	loan := &models.Loan{
		CustomerID:       input.CustomerID,
		LoanAmount:       input.Amount,
		InterestRate:     input.InterestRate,
		LoanPeriodMonths: input.PeriodMonths,
		StartDate:        startDate,
	}

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, nil, err
	}

	return loan, s.Summarize(input.Amount, input.InterestRate, input.PeriodMonths), nil
}

// ListByCustomer lists all loans recorded for a customer
func (s *LoanService) ListByCustomer(ctx context.Context, customerID uint) ([]*models.Loan, error) {
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}

	return s.loanRepo.ListByCustomerID(ctx, customerID)
}

// addMonths advances t by n calendar months, clamping the day to the
// last valid day of the target month (Jan 31 + 1 month = Feb 28/29).
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	firstOfTarget := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, t.Location())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
