package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employe représente un employé de la boutique.
// PinHash est un hash bcrypt du PIN de pointage, jamais en clair après persistance.
// TauxHoraire est optionnel (nil = pas de calcul de montant dans le récap).
type Employe struct {
	ID          string
	Nom         string
	Email       string
	PinHash     string
	Actif       bool
	TauxHoraire *decimal.Decimal // EUR/heure
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
