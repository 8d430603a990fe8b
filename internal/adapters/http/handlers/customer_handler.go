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

// CustomerHandler handles customer endpoints
type CustomerHandler struct {
	customerService *services.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Register handles customer registration
// @Summary Register new customer
// @Description Register a customer with optional collateral
// @Tags Customers
// @Accept json
// @Produce json
// @Param body body services.RegisterCustomerInput true "Customer data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /register-customer [post]
func (h *CustomerHandler) Register(c *fiber.Ctx) error {
	var input services.RegisterCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validate.Struct(&input); err != nil {
		return response.BadRequest(c, "Missing "+validate.MissingField(err))
	}

	customer, err := h.customerService.Register(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDate):
			return response.BadRequest(c, "Invalid date of birth, use YYYY-MM-DD")
		case errors.Is(err, domain.ErrNegativeValue):
			return response.BadRequest(c, "Forced sale value must not be negative")
		case errors.Is(err, domain.ErrCustomerExists):
			return response.BadRequest(c, "Customer ID number already registered")
		default:
			logger.Get().Error().Err(err).Msg("customer registration failed")
			return response.InternalServerError(c, "Failed to register customer")
		}
	}

	return response.Created(c, fiber.Map{
		"message":     "Customer registered successfully",
		"customer_id": customer.ID,
	})
}
