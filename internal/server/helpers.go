package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

const (
	tokenIssuer   = "inkwell-api"
	tokenAudience = "inkwell-client"
	tokenLifetime = 30 * 24 * time.Hour
)

// errResponseWritten signals that the handler already wrote the error body.
var errResponseWritten = errors.New("response already written")

// parseID parses a positive numeric route parameter. On failure it writes the
// 400 response itself and returns errResponseWritten.
func parseID(c *fiber.Ctx, param, label string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+label))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parseListOptions reads the list query parameters. A zero limit means no
// limit; an explicit limit is capped at 100.
func parseListOptions(c *fiber.Ctx) repository.PostListOptions {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	if limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return repository.PostListOptions{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
		Limit:    limit,
		Offset:   offset,
	}
}

// currentUserID returns the authenticated user's id set by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// respondServiceError maps an application error to an HTTP status and writes
// the standard error body.
func respondServiceError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	status := fiber.StatusInternalServerError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeValidation:
			status = fiber.StatusBadRequest
		case models.CodeUnauthorized:
			status = fiber.StatusUnauthorized
		case models.CodeForbidden:
			status = fiber.StatusForbidden
		case models.CodeNotFound:
			status = fiber.StatusNotFound
		case models.CodeConflict:
			status = fiber.StatusConflict
		case models.CodeUpstream:
			status = fiber.StatusInternalServerError
		}
	}
	return models.RespondWithError(c, status, err)
}

// generateToken mints a signed JWT for the given user.
func (s *Server) generateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"sub": strconv.FormatUint(uint64(userID), 10),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
