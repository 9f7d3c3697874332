package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/residence-registry/internal/api/dto"
	"github.com/spec-kit/residence-registry/internal/service"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

// AuthHandler exposes the token exchange against the fixed credential table.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	role, token, exp, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.LoginResponse{Role: role, Token: token, ExpiresAt: exp},
	})
}
