package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	apppointage "github.com/frenchymerlincbd-source/pointeuse/internal/application/pointage"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
)

// BorneHandler gère les endpoints publics de la borne (tablette en boutique):
// pointage par PIN et consultation du planning personnel.
type BorneHandler struct {
	pointer  *apppointage.UseCase
	planning *usecase.PlanningUseCase
	seuilMin int
}

// NewBorneHandler construit le handler de la borne.
func NewBorneHandler(pointer *apppointage.UseCase, planning *usecase.PlanningUseCase, seuilMin int) *BorneHandler {
	return &BorneHandler{pointer: pointer, planning: planning, seuilMin: seuilMin}
}

// Pointer godoc
// @Summary      Pointer une entrée ou une sortie
// @Tags         borne
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PointerRequest  true  "email, pin, action (ENTREE|SORTIE)"
// @Success      201   {object}  dto.PointerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pointer [post]
func (h *BorneHandler) Pointer(c *fiber.Ctx) error {
	var in dto.PointerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Email == "" || in.Pin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email et pin sont requis"})
	}
	out, err := h.pointer.Pointer(c.Context(), in, h.seuilMin)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "action invalide (ENTREE ou SORTIE)"})
		}
		if errors.Is(err, domain.ErrEmployeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employé inconnu"})
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "PIN incorrect"})
		}
		if errors.Is(err, domain.ErrEmployeInactif) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "employé désactivé"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MonPlanning godoc
// @Summary      Planning personnel d'un employé (borne)
// @Tags         borne
// @Produce      json
// @Param        email  query  string  true   "Email de l'employé"
// @Param        from   query  string  false  "Date de début (YYYY-MM-DD)"
// @Param        to     query  string  false  "Date de fin exclue (YYYY-MM-DD)"
// @Success      200    {object}  dto.PlanningResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /api/mon-planning [get]
func (h *BorneHandler) MonPlanning(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email est requis"})
	}
	from, to, err := parsePeriode(c, 7)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.planning.MonPlanning(c.Context(), email, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employé inconnu"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
