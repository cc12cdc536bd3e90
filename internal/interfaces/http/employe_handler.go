package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
)

// EmployeHandler gère les requêtes HTTP pour Employe (protégé).
type EmployeHandler struct {
	uc *usecase.EmployeUseCase
}

// NewEmployeHandler construit le handler.
func NewEmployeHandler(uc *usecase.EmployeUseCase) *EmployeHandler {
	return &EmployeHandler{uc: uc}
}

// Create godoc
// @Summary      Créer un employé
// @Tags         employes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeRequest  true  "nom, email, pin"
// @Success      201   {object}  dto.EmployeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employes [post]
func (h *EmployeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	if in.Nom == "" || in.Email == "" || in.Pin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nom, email et pin sont requis"})
	}
	if len(in.Pin) < 4 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "le pin doit faire au moins 4 caractères"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "cet email est déjà enregistré"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtenir un employé par ID
// @Tags         employes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de l'employé"
// @Success      200  {object}  dto.EmployeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employes/{id} [get]
func (h *EmployeHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employé non trouvé"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Lister les employés
// @Tags         employes
// @Security     Bearer
// @Produce      json
// @Param        q       query  string  false  "Recherche par nom ou email (insensible aux accents)"
// @Param        limit   query  int     false  "Limite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.EmployeListResponse
// @Router       /api/employes [get]
func (h *EmployeHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Query("q"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un employé
// @Tags         employes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de l'employé"
// @Param        body  body  dto.UpdateEmployeRequest  true  "Champs à modifier"
// @Success      200   {object}  dto.EmployeResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employes/{id} [put]
func (h *EmployeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	var in dto.UpdateEmployeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corps invalide"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "cet email est déjà enregistré"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "employé non trouvé"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un employé
// @Tags         employes
// @Security     Bearer
// @Param        id  path  string  true  "ID de l'employé"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/employes/{id} [delete]
func (h *EmployeHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id est requis"})
	}
	if err := h.uc.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
