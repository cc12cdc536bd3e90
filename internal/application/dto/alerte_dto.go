package dto

import "time"

// AlerteResponse une alerte de retard avec son employé joint.
type AlerteResponse struct {
	ID            string     `json:"id"`
	Employe       EmployeRef `json:"employe"`
	PointageID    string     `json:"pointage_id"`
	ShiftID       string     `json:"shift_id"`
	Type          string     `json:"type"`
	PointageTs    time.Time  `json:"pointage_ts"`
	RetardMinutes int        `json:"retard_minutes"`
	SeuilMinutes  int        `json:"seuil_minutes"`
	Note          string     `json:"note,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AlerteListResponse alertes les plus récentes d'abord.
type AlerteListResponse struct {
	Items []AlerteResponse `json:"items"`
}
