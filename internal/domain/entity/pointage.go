package entity

import "time"

// Types de pointage.
const (
	PointageEntree = "ENTREE"
	PointageSortie = "SORTIE"
)

// Pointage représente un événement de badgeage (append-only, immuable une fois créé).
type Pointage struct {
	ID         string
	EmployeID  string
	Type       string // ENTREE | SORTIE
	Horodatage time.Time
	CreatedAt  time.Time
}

// EstEntree indique si le pointage est une entrée (seules les ENTREE participent
// à l'évaluation des retards).
func (p *Pointage) EstEntree() bool {
	return p.Type == PointageEntree
}
