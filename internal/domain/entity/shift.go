package entity

import "time"

// Shift représente un créneau de travail planifié pour un employé.
// StartAt/EndAt sont des instants absolus (EndAt strictement après StartAt).
// Boutique est un tag de lieu optionnel. Publie ne concerne que l'éditabilité
// côté planning, jamais la réconciliation des pointages.
type Shift struct {
	ID        string
	EmployeID string
	Boutique  string // vide = non renseignée
	StartAt   time.Time
	EndAt     time.Time
	Publie    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
