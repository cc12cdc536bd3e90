package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
)

// AlerteHandler gère la consultation des alertes de retard (protégé).
type AlerteHandler struct {
	uc *usecase.AlerteUseCase
}

// NewAlerteHandler construit le handler.
func NewAlerteHandler(uc *usecase.AlerteUseCase) *AlerteHandler {
	return &AlerteHandler{uc: uc}
}

// List godoc
// @Summary      Lister les alertes récentes
// @Tags         alertes
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Limite"  default(50)
// @Success      200  {object}  dto.AlerteListResponse
// @Router       /api/alertes [get]
func (h *AlerteHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	out, err := h.uc.Lister(c.Context(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
