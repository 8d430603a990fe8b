package handlers

import (
	"errors"

	"instacash-backend/internal/core/domain"
	"instacash-backend/internal/core/services"
	"instacash-backend/internal/pkg/logger"
	"instacash-backend/internal/pkg/response"
	"instacash-backend/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan calculation and application endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Calculate handles schedule calculation
// @Summary Calculate repayment schedule
// @Description Generate a flat-rate repayment schedule, no persistence
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.CalculateLoanInput true "Loan parameters"
// @Success 200 {array} services.ScheduleEntry
// @Failure 400 {object} map[string]interface{}
// @Router /calculate-loan [post]
func (h *LoanHandler) Calculate(c *fiber.Ctx) error {
	var input services.CalculateLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, "Missing "+validate.MissingField(err))
	}

	schedule, err := h.loanService.Schedule(&input)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	return response.OK(c, schedule)
}

// Apply handles loan applications
// @Summary Apply for a loan
// @Description Record a loan for an existing customer
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.ApplyLoanInput true "Loan application"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /apply-loan [post]
func (h *LoanHandler) Apply(c *fiber.Ctx) error {
	var input services.ApplyLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, "Missing "+validate.MissingField(err))
	}

	loan, summary, err := h.loanService.Apply(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return response.NotFound(c, "Customer not found")
		case errors.Is(err, domain.ErrLoanLimitExceeded):
			return response.BadRequest(c, "Loan amount exceeds collateral loan limit")
		case errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInvalidPeriod),
			errors.Is(err, domain.ErrInvalidDate):
			return response.BadRequest(c, err.Error())
		default:
			logger.Get().Error().Err(err).Msg("loan application failed")
			return response.InternalServerError(c, "Failed to submit loan application")
		}
	}

	return response.Created(c, fiber.Map{
		"message":            "Loan application submitted successfully",
		"loan_id":            loan.ID,
		"calculated_details": summary,
	})
}

// LimitRequest represents loan limit request body
type LimitRequest struct {
	CollateralType  string  `json:"collateralType"`
	ForcedSaleValue float64 `json:"forcedSaleValue"`
	MonthlyIncome   float64 `json:"monthlyIncome"`
}

// Limit handles collateral loan limit calculation
// @Summary Calculate loan limit
// @Description Maximum loan amount backed by a piece of collateral
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body LimitRequest true "Collateral data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /loan-limit [post]
func (h *LoanHandler) Limit(c *fiber.Ctx) error {
	var req LimitRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.CollateralType == "" {
		return response.BadRequest(c, "Collateral type is required")
	}

	limit := h.loanService.CollateralLimit(req.CollateralType, req.ForcedSaleValue, req.MonthlyIncome)

	return response.OK(c, fiber.Map{
		"loan_limit": limit,
	})
}

// ListByCustomer handles listing a customer's loans
// @Summary List customer loans
// @Tags Loans
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /customers/{id}/loans [get]
func (h *LoanHandler) ListByCustomer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid customer id")
	}

	loans, err := h.loanService.ListByCustomer(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return response.NotFound(c, "Customer not found")
		}
		logger.Get().Error().Err(err).Msg("loan listing failed")
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.OK(c, fiber.Map{
		"loans": loans,
	})
}
