package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrEmployeNotFound    = errors.New("employé introuvable")
	ErrEmailAlreadyExists = errors.New("email déjà utilisé")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrUnauthorized       = errors.New("non autorisé")
	ErrForbidden          = errors.New("accès refusé")
	ErrConflict           = errors.New("conflit avec l'état actuel")
	ErrEmployeInactif     = errors.New("employé inactif")
	ErrShiftPublie        = errors.New("shift publié, modification refusée")

	// ErrSeuilInvalide distingue une erreur de configuration (seuil de retard
	// négatif) d'une erreur de données au moment de l'évaluation.
	ErrSeuilInvalide = errors.New("seuil de retard invalide")
)
