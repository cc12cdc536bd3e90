package repository

import (
	"context"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
)

// AlerteAvecEmploye ligne d'alerte enrichie du nom/email de l'employé pour
// l'affichage (jointure côté repo, comme la page alertes historique).
type AlerteAvecEmploye struct {
	Alerte       entity.Alerte
	EmployeNom   string
	EmployeEmail string
}

// AlerteRepository définit le port de persistance pour Alerte.
type AlerteRepository interface {
	// InsertIfAbsent insère l'alerte sauf si une alerte existe déjà pour le
	// même pointage (clé naturelle pointage_id). created=false signifie
	// "doublon détecté": un no-op réussi, pas une erreur. Un insert échoué ne
	// doit jamais être rapporté comme un succès.
	InsertIfAbsent(ctx context.Context, a *entity.Alerte) (created bool, err error)

	// ListRecent: alertes les plus récentes d'abord, avec l'employé joint.
	ListRecent(ctx context.Context, limit int) ([]*AlerteAvecEmploye, error)
}
