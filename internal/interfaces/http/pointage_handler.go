package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
)

// PointageHandler gère l'historique des pointages et le récapitulatif
// journalier (protégé).
type PointageHandler struct {
	uc *usecase.RecapUseCase
}

// NewPointageHandler construit le handler.
func NewPointageHandler(uc *usecase.RecapUseCase) *PointageHandler {
	return &PointageHandler{uc: uc}
}

// List godoc
// @Summary      Lister les pointages d'une période
// @Tags         pointages
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  false  "Date de début (YYYY-MM-DD)"
// @Param        to          query  string  false  "Date de fin exclue (YYYY-MM-DD)"
// @Param        employe_id  query  string  false  "Filtre employé"
// @Success      200  {object}  dto.PointageListResponse
// @Router       /api/pointages [get]
func (h *PointageHandler) List(c *fiber.Ctx) error {
	from, to, err := parsePeriode(c, 1)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.ListerPointages(c.Context(), from, to, c.Query("employe_id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "période invalide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recap godoc
// @Summary      Récapitulatif des heures travaillées du jour
// @Tags         pointages
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "Jour ciblé (YYYY-MM-DD), aujourd'hui à défaut"
// @Success      200  {object}  dto.RecapResponse
// @Router       /api/pointages/recap [get]
func (h *PointageHandler) Recap(c *fiber.Ctx) error {
	cible, err := parseJour(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.RecapJour(c.Context(), cible)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
