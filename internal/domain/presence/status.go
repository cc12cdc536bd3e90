package presence

import (
	"time"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
)

// Statut états d'affichage d'un shift sur le tableau de bord.
type Statut string

const (
	StatutALHeure  Statut = "A_LHEURE"  // shift pas encore commencé, rien à signaler
	StatutPresent  Statut = "PRESENT"   // entré à l'heure ou en avance
	StatutEnRetard Statut = "EN_RETARD" // entré après le seuil de tolérance
	StatutAbsent   Statut = "ABSENT"    // shift commencé (ou fini) sans ENTREE vue
	StatutTermine  Statut = "TERMINE"   // shift fini, une ENTREE a été vue ce jour-là
)

// Classement verdict du classifieur pour un shift.
type Classement struct {
	Statut          Statut
	MinutesRetard   int              // renseigné uniquement pour EN_RETARD
	DernierPointage *entity.Pointage // nil si aucun pointage ce jour-là
}

// ClassifierShift produit le statut d'affichage d'un shift à l'instant now, à
// partir des pointages du jour de l'employé (ordre chronologique). Fonction
// pure de ses entrées: aucun statut n'est persisté, le verdict est recalculé à
// chaque lecture. Règles évaluées dans l'ordre, première correspondance gagne:
//
//  1. now après la fin du shift: TERMINE si une ENTREE a été vue dans la
//     journée, sinon ABSENT — une SORTIE isolée sans ENTREE reste ABSENT.
//  2. sinon, si le dernier pointage est une ENTREE: EN_RETARD ou PRESENT selon
//     EvaluerRetard (même seuil, même formule que le chemin du pointage).
//  3. sinon (aucune ENTREE courante): ABSENT si le shift a commencé, A_LHEURE
//     s'il n'a pas encore commencé.
//
// Seul le dernier pointage détermine la présence courante; les ENTREE
// antérieures sont évaluées indépendamment pour les alertes par l'émetteur.
func ClassifierShift(shift *entity.Shift, now time.Time, pointages []*entity.Pointage, seuilMin int) (Classement, error) {
	if seuilMin < 0 {
		return Classement{}, domain.ErrSeuilInvalide
	}
	if shift == nil {
		return Classement{}, domain.ErrInvalidInput
	}

	var dernier *entity.Pointage
	entreeVue := false
	for _, p := range pointages {
		if p == nil {
			continue
		}
		dernier = p
		if p.EstEntree() {
			entreeVue = true
		}
	}

	// 1. Fenêtre du shift fermée
	if now.After(shift.EndAt) {
		statut := StatutAbsent
		if entreeVue {
			statut = StatutTermine
		}
		return Classement{Statut: statut, DernierPointage: dernier}, nil
	}

	// 2. Shift en cours ou à venir, dernier pointage = ENTREE
	if dernier != nil && dernier.EstEntree() {
		retard, err := EvaluerRetard(shift, dernier, seuilMin)
		if err != nil {
			return Classement{}, err
		}
		if retard.EnRetard {
			return Classement{Statut: StatutEnRetard, MinutesRetard: retard.Minutes, DernierPointage: dernier}, nil
		}
		return Classement{Statut: StatutPresent, DernierPointage: dernier}, nil
	}

	// 3. Pas d'ENTREE courante (aucun pointage, ou dernier = SORTIE)
	if !now.Before(shift.StartAt) {
		return Classement{Statut: StatutAbsent, DernierPointage: dernier}, nil
	}
	return Classement{Statut: StatutALHeure, DernierPointage: dernier}, nil
}
