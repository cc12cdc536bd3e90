package entity

import "time"

// AlerteTypeRetard seul type d'alerte émis à ce jour.
const AlerteTypeRetard = "LATE"

// Alerte est un fait dérivé: le constat durable d'une ENTREE en retard.
// Au plus une alerte par pointage (clé de déduplication naturelle PointageID).
// Jamais modifiée ni supprimée par le moteur; l'acquittement est externe.
type Alerte struct {
	ID            string
	EmployeID     string
	PointageID    string
	ShiftID       string
	Type          string // LATE
	PointageTs    time.Time
	RetardMinutes int // strictement supérieur au seuil en vigueur
	SeuilMinutes  int // seuil appliqué au moment de l'évaluation
	Note          string
	CreatedAt     time.Time
}
