package dto

import "time"

// PlanningItem un créneau à créer, référencé par l'email de l'employé (le
// formulaire hebdomadaire du planning travaille par email).
type PlanningItem struct {
	Email    string    `json:"email"`
	Boutique string    `json:"boutique,omitempty"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
}

// CreatePlanningRequest création en lot des shifts d'une semaine.
type CreatePlanningRequest struct {
	Items []PlanningItem `json:"items"`
}

// CreatePlanningResponse bilan de la création: emails inconnus ignorés.
type CreatePlanningResponse struct {
	Crees          int      `json:"crees"`
	EmailsInconnus []string `json:"emails_inconnus,omitempty"`
}

// UpdateShiftRequest mise à jour partielle d'un shift non publié.
type UpdateShiftRequest struct {
	Boutique *string    `json:"boutique,omitempty"`
	StartAt  *time.Time `json:"start_at,omitempty"`
	EndAt    *time.Time `json:"end_at,omitempty"`
}

// ShiftResponse un shift avec son employé joint.
type ShiftResponse struct {
	ID       string     `json:"id"`
	Boutique string     `json:"boutique,omitempty"`
	StartAt  time.Time  `json:"start_at"`
	EndAt    time.Time  `json:"end_at"`
	Publie   bool       `json:"publie"`
	Employe  EmployeRef `json:"employe"`
}

// PlanningResponse listage des shifts d'une fenêtre.
type PlanningResponse struct {
	Items []ShiftResponse `json:"items"`
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
}
