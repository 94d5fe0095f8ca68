package middleware

import (
	"strconv"
	"strings"

	"leembo/internal/domain"
	"leembo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware
const (
	LocalSessionID   = "validated_session_id"
	LocalLimit       = "validated_limit"
	LocalAge         = "validated_age"
	LocalPreferences = "validated_preferences"
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

// ValidateSessionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateSessionID(id); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler
		}
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// ValidateDiscoveryParams validates limit, age and preferences query
// parameters shared by the trending and course endpoints. Absent values
// are stored as zero so the service applies its own defaults.
func (vm *ValidationMiddleware) ValidateDiscoveryParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var errs domain.ValidationErrors

		limit, err := parseOptionalInt(c.Query("limit"))
		if err != nil {
			errs = append(errs, domain.NewInvalidFormatError("limit", c.Query("limit")))
		} else if limit != 0 {
			errs = append(errs, vm.validator.ValidateLimit(limit)...)
		}

		age, err := parseOptionalInt(c.Query("age"))
		if err != nil {
			errs = append(errs, domain.NewInvalidFormatError("age", c.Query("age")))
		} else {
			errs = append(errs, vm.validator.ValidateAge(age)...)
		}

		if len(errs) > 0 {
			return errs
		}

		c.Locals(LocalLimit, limit)
		c.Locals(LocalAge, age)
		c.Locals(LocalPreferences, ParsePreferences(c.Query("preferences")))
		return c.Next()
	}
}

// ParsePreferences splits a comma-separated preference list, dropping blanks.
func ParsePreferences(raw string) []string {
	prefs := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			prefs = append(prefs, p)
		}
	}
	return prefs
}

func parseOptionalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
