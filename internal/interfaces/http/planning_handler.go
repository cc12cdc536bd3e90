package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
)

// PlanningHandler gère les requêtes HTTP du planning (protégé).
type PlanningHandler struct {
	uc *usecase.PlanningUseCase
}

// NewPlanningHandler construit le handler.
func NewPlanningHandler(uc *usecase.PlanningUseCase) *PlanningHandler {
	return &PlanningHandler{uc: uc}
}

// List godoc
// @Summary      Lister les shifts d'une période
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  false  "Date de début (YYYY-MM-DD)"
// @Param        to        query  string  false  "Date de fin exclue (YYYY-MM-DD)"
// @Param        boutique  query  string  false  "Filtre boutique"
// @Success      200       {object}  dto.PlanningResponse
// @Router       /api/planning [get]
func (h *PlanningHandler) List(c *fiber.Ctx) error {
	from, to, err := parsePeriode(c, 7)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Lister(c.Context(), from, to, c.Query("boutique"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateWeek godoc
// @Summary      Créer les shifts d'une semaine (par email employé)
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePlanningRequest  true  "items: email, boutique, start_at, end_at"
// @Success      201   {object}  dto.CreatePlanningResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planning [post]
func (h *PlanningHandler) CreateWeek(c *fiber.Ctx) error {
	var in dto.CreatePlanningRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "items est requis"})
	}
	out, err := h.uc.CreerSemaine(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "aucun item valide (emails inconnus ou dates incohérentes)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modifier un shift non publié
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID du shift"
// @Param        body  body  dto.UpdateShiftRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/planning/{id} [put]
func (h *PlanningHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return traduireErreurShift(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "shift non trouvé"})
	}
	return c.JSON(out)
}

// Publish godoc
// @Summary      Publier un shift (le fige)
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID du shift"
// @Success      200  {object}  dto.ShiftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/planning/{id}/publier [post]
func (h *PlanningHandler) Publish(c *fiber.Ctx) error {
	out, err := h.uc.Publier(c.Context(), c.Params("id"))
	if err != nil {
		return traduireErreurShift(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "shift non trouvé"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un shift non publié
// @Tags         planning
// @Security     Bearer
// @Param        id  path  string  true  "ID du shift"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/planning/{id} [delete]
func (h *PlanningHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return traduireErreurShift(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportPDF godoc
// @Summary      Exporter le planning de la période en PDF
// @Tags         planning
// @Security     Bearer
// @Produce      application/pdf
// @Param        from      query  string  false  "Date de début (YYYY-MM-DD)"
// @Param        to        query  string  false  "Date de fin exclue (YYYY-MM-DD)"
// @Param        boutique  query  string  false  "Filtre boutique"
// @Success      200  {file}  binary
// @Router       /api/planning/pdf [get]
func (h *PlanningHandler) ExportPDF(c *fiber.Ctx) error {
	from, to, err := parsePeriode(c, 7)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.uc.ExporterPDF(c.Context(), from, to, c.Query("boutique"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="planning-%s.pdf"`, from.Format(formatJour)))
	return c.Send(pdfBytes)
}

// traduireErreurShift mappe les erreurs métier du planning en statuts HTTP.
func traduireErreurShift(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "shift non trouvé"})
	}
	if errors.Is(err, domain.ErrShiftPublie) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SHIFT_PUBLIE", Message: "shift publié, modification interdite"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "données invalides"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
