package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PointerRequest pointage depuis la borne: email + PIN + action.
// Action vide = ENTREE (comportement historique de la borne).
type PointerRequest struct {
	Email  string `json:"email"`
	Pin    string `json:"pin"`
	Action string `json:"action,omitempty"` // ENTREE | SORTIE
}

// PointerResponse résultat d'un pointage. EnRetard/MinutesRetard ne sont
// renseignés que pour une ENTREE appariée à un shift; AlerteCreee indique si
// cette invocation a créé l'alerte (false sur un doublon déjà alerté).
type PointerResponse struct {
	Message       string           `json:"message"`
	Pointage      PointageResponse `json:"pointage"`
	EnRetard      bool             `json:"en_retard"`
	MinutesRetard int              `json:"minutes_retard,omitempty"`
	AlerteCreee   bool             `json:"alerte_creee,omitempty"`
}

// PointageResponse représentation d'un pointage.
type PointageResponse struct {
	ID         string    `json:"id"`
	EmployeID  string    `json:"employe_id"`
	Type       string    `json:"type"`
	Horodatage time.Time `json:"horodatage"`
}

// PointageListResponse listage chronologique de pointages.
type PointageListResponse struct {
	Items []PointageResponse `json:"items"`
	From  time.Time          `json:"from"`
	To    time.Time          `json:"to"`
}

// RecapLigne heures travaillées d'un employé sur la fenêtre (paires
// ENTREE→SORTIE), et montant estimé si un taux horaire est renseigné.
type RecapLigne struct {
	Employe EmployeRef       `json:"employe"`
	Heures  decimal.Decimal  `json:"heures"`
	Montant *decimal.Decimal `json:"montant,omitempty"`
}

// RecapResponse récapitulatif des heures travaillées du jour.
type RecapResponse struct {
	From   time.Time    `json:"from"`
	To     time.Time    `json:"to"`
	Lignes []RecapLigne `json:"lignes"`
}
