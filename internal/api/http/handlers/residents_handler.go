package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/residence-registry/internal/api/dto"
	"github.com/spec-kit/residence-registry/internal/service"
	apperrors "github.com/spec-kit/residence-registry/pkg/util/errorutil"
)

// ResidentsHandler manages the /students resource. Responses are bare
// payloads (array or object), matching what existing registry clients parse.
type ResidentsHandler struct {
	registry *service.RegistryService
}

// NewResidentsHandler constructs handler.
func NewResidentsHandler(registry *service.RegistryService) *ResidentsHandler {
	return &ResidentsHandler{registry: registry}
}

// List GET /students.
func (h *ResidentsHandler) List(c *fiber.Ctx) error {
	residents, err := h.registry.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromDomainList(residents))
}

// Create POST /students.
func (h *ResidentsHandler) Create(c *fiber.Ctx) error {
	var req dto.ResidentPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	resident, fieldErrs := req.ToDomain()
	if fieldErrs != nil {
		return apperrors.NewValidationError("invalid resident", fieldErrs)
	}

	created, err := h.registry.Create(c.UserContext(), resident)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.FromDomain(created))
}

// Update PUT /students/:id.
func (h *ResidentsHandler) Update(c *fiber.Ctx) error {
	var req dto.ResidentPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	resident, fieldErrs := req.ToDomain()
	if fieldErrs != nil {
		return apperrors.NewValidationError("invalid resident", fieldErrs)
	}

	updated, err := h.registry.Update(c.UserContext(), c.Params("id"), resident)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromDomain(updated))
}

// Delete DELETE /students/:id.
func (h *ResidentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.registry.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
