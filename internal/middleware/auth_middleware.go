package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"health-screen/internal/dto"
	"health-screen/internal/logger"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	UserIDKey           = "userID" // Key for storing UserID in fiber.Ctx locals
)

// TokenValidator validates access tokens.
type TokenValidator interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

func bearerToken(c *fiber.Ctx) (string, string) {
	authHeader := c.Get(AuthorizationHeader)
	if authHeader == "" {
		return "", "MISSING_AUTH_HEADER"
	}
	if !strings.HasPrefix(authHeader, BearerSchema) {
		return "", "INVALID_AUTH_SCHEME"
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
	if token == "" {
		return "", "EMPTY_TOKEN"
	}
	return token, ""
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}

// Protected requires a valid access token and stores its user id in
// c.Locals(UserIDKey).
func Protected(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, problem := bearerToken(c)
		switch problem {
		case "MISSING_AUTH_HEADER":
			return unauthorized(c, problem, "Authorization header is missing")
		case "INVALID_AUTH_SCHEME":
			return unauthorized(c, problem, "Authorization scheme is not Bearer")
		case "EMPTY_TOKEN":
			return unauthorized(c, problem, "Token is empty")
		}

		claims, err := validator.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			return unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// OptionalAuth sets the user id when a valid access token is present and
// otherwise continues anonymously.
func OptionalAuth(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, problem := bearerToken(c)
		if problem != "" {
			return c.Next()
		}

		claims, err := validator.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("OptionalAuth: JWT validation failed, proceeding as anonymous.", zap.Error(err))
			return c.Next()
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID returns the authenticated user id or "".
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
