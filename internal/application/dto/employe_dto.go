package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeRequest création d'un employé. Le PIN arrive en clair et est
// haché bcrypt avant persistance, jamais stocké ni renvoyé.
type CreateEmployeRequest struct {
	Nom         string           `json:"nom"`
	Email       string           `json:"email"`
	Pin         string           `json:"pin"`
	TauxHoraire *decimal.Decimal `json:"taux_horaire,omitempty"`
}

// UpdateEmployeRequest mise à jour partielle (nil = inchangé).
type UpdateEmployeRequest struct {
	Nom         *string          `json:"nom,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Pin         *string          `json:"pin,omitempty"`
	Actif       *bool            `json:"actif,omitempty"`
	TauxHoraire *decimal.Decimal `json:"taux_horaire,omitempty"`
}

// EmployeResponse représentation d'un employé (sans le hash du PIN).
type EmployeResponse struct {
	ID          string           `json:"id"`
	Nom         string           `json:"nom"`
	Email       string           `json:"email"`
	Actif       bool             `json:"actif"`
	TauxHoraire *decimal.Decimal `json:"taux_horaire,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// EmployeRef référence courte d'un employé dans les lignes composées.
type EmployeRef struct {
	ID    string `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

// EmployeListResponse listage paginé.
type EmployeListResponse struct {
	Items []EmployeResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
