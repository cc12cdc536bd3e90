package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	apptableau "github.com/frenchymerlincbd-source/pointeuse/internal/application/tableau"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
)

// TableauHandler gère le tableau de présence du jour (protégé).
type TableauHandler struct {
	uc       *apptableau.UseCase
	seuilMin int
}

// NewTableauHandler construit le handler.
func NewTableauHandler(uc *apptableau.UseCase, seuilMin int) *TableauHandler {
	return &TableauHandler{uc: uc, seuilMin: seuilMin}
}

// Get godoc
// @Summary      Tableau de présence du jour
// @Tags         tableau
// @Security     Bearer
// @Produce      json
// @Param        boutique  query  string  false  "Filtre boutique"
// @Param        seuil     query  int     false  "Tolérance de retard en minutes (défaut: config)"
// @Success      200  {object}  dto.TableauResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/tableau [get]
//
// Toujours évalué à l'instant présent: un "tableau d'hier" classerait les
// shifts avec une horloge figée à minuit et ne produirait jamais TERMINE.
func (h *TableauHandler) Get(c *fiber.Ctx) error {
	seuil := c.QueryInt("seuil", h.seuilMin)
	out, err := h.uc.StatutsDuJour(c.Context(), time.Now().UTC(), seuil, c.Query("boutique"))
	if err != nil {
		if errors.Is(err, domain.ErrSeuilInvalide) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "seuil doit être >= 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
