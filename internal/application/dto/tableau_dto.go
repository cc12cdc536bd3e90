package dto

import "time"

// TableauLigne verdict du classifieur pour un shift du jour.
// MinutesRetard n'est renseigné que pour le statut EN_RETARD.
type TableauLigne struct {
	ShiftID         string            `json:"shift_id"`
	Boutique        string            `json:"boutique,omitempty"`
	StartAt         time.Time         `json:"start_at"`
	EndAt           time.Time         `json:"end_at"`
	Employe         EmployeRef        `json:"employe"`
	DernierPointage *PointageResponse `json:"dernier_pointage"`
	Statut          string            `json:"statut"`
	MinutesRetard   int               `json:"minutes_retard,omitempty"`
}

// TableauResponse tableau de bord du jour: une ligne par shift planifié, la
// fenêtre et le seuil appliqués sont renvoyés pour affichage.
type TableauResponse struct {
	Lignes    []TableauLigne `json:"lignes"`
	Boutiques []string       `json:"boutiques"`
	From      time.Time      `json:"from"`
	To        time.Time      `json:"to"`
	SeuilMin  int            `json:"seuil_min"`
}
