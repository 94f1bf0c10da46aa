package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"health-screen/internal/domain"
	"health-screen/internal/validation"
)

// Locals keys set by ValidationMiddleware.
const (
	ValidatedLimitKey  = "validated_limit"
	ValidatedOffsetKey = "validated_offset"
	ValidatedPeriodKey = "validated_period"
)

// Query defaults.
const (
	DefaultPageLimit   = 20
	DefaultTrendPeriod = "30d"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateResultID validates the :id path parameter of a cached result.
func (vm *ValidationMiddleware) ValidateResultID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateResultID(c.Params("id")); len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}
		return c.Next()
	}
}

// ValidatePagination parses limit and offset query parameters.
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := queryInt(c, "limit", DefaultPageLimit)
		if err != nil {
			return err
		}
		offset, err := queryInt(c, "offset", 0)
		if err != nil {
			return err
		}

		if errors := vm.validator.ValidatePagination(limit, offset); len(errors) > 0 {
			return errors
		}

		c.Locals(ValidatedLimitKey, limit)
		c.Locals(ValidatedOffsetKey, offset)
		return c.Next()
	}
}

// ValidateTrendPeriod validates the period query parameter.
func (vm *ValidationMiddleware) ValidateTrendPeriod() fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", DefaultTrendPeriod)
		if errors := vm.validator.ValidateTrendPeriod(period); len(errors) > 0 {
			return errors
		}
		c.Locals(ValidatedPeriodKey, period)
		return c.Next()
	}
}

func queryInt(c *fiber.Ctx, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError(name, raw)}
	}
	return v, nil
}
