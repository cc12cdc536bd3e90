// Package tableau contient le cas d'usage du tableau de bord des présences:
// une ligne par shift planifié aujourd'hui, classée par le moteur de présence.
// Aucun statut n'est persisté: tout est recalculé à chaque lecture depuis la
// source de vérité, avec le même seuil et la même formule que le chemin
// synchrone du pointage.
package tableau

import (
	"context"
	"fmt"
	"time"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// UseCase génère le tableau de bord du jour.
type UseCase struct {
	employes  repository.EmployeRepository
	shifts    repository.ShiftRepository
	pointages repository.PointageRepository
	fenetre   presence.DayWindow
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	employes repository.EmployeRepository,
	shifts repository.ShiftRepository,
	pointages repository.PointageRepository,
	fenetre presence.DayWindow,
) *UseCase {
	return &UseCase{employes: employes, shifts: shifts, pointages: pointages, fenetre: fenetre}
}

// StatutsDuJour classe chaque shift planifié dans le jour civil de now.
//
// Deux requêtes indépendantes en parallèle:
//  1. shifts du jour (filtre boutique optionnel)
//  2. pointages du jour, tous employés, chronologiques
//
// puis classification pure par shift — pas de verrou nécessaire, au pire la
// vue combinée est légèrement datée si les données bougent pendant le calcul.
func (uc *UseCase) StatutsDuJour(ctx context.Context, now time.Time, seuilMin int, boutique string) (*dto.TableauResponse, error) {
	if seuilMin < 0 {
		return nil, domain.ErrSeuilInvalide
	}
	debut, fin := uc.fenetre.Bounds(now)

	type shiftsResult struct {
		shifts []*entity.Shift
		err    error
	}
	type pointagesResult struct {
		pointages []*entity.Pointage
		err       error
	}

	shiftsCh := make(chan shiftsResult, 1)
	pointagesCh := make(chan pointagesResult, 1)

	go func() {
		s, err := uc.shifts.ListStartBetween(ctx, debut, fin, boutique)
		shiftsCh <- shiftsResult{s, err}
	}()
	go func() {
		p, err := uc.pointages.ListBetween(ctx, debut, fin)
		pointagesCh <- pointagesResult{p, err}
	}()

	sres := <-shiftsCh
	pres := <-pointagesCh

	if sres.err != nil {
		return nil, fmt.Errorf("tableau: shifts du jour: %w", sres.err)
	}
	if pres.err != nil {
		return nil, fmt.Errorf("tableau: pointages du jour: %w", pres.err)
	}

	// Index pointages par employé (déjà chronologiques).
	parEmploye := make(map[string][]*entity.Pointage)
	for _, p := range pres.pointages {
		parEmploye[p.EmployeID] = append(parEmploye[p.EmployeID], p)
	}

	// Employés joints (une lecture par employé distinct, mis en cache).
	employes := make(map[string]*entity.Employe)
	for _, s := range sres.shifts {
		if _, ok := employes[s.EmployeID]; ok {
			continue
		}
		e, err := uc.employes.GetByID(s.EmployeID)
		if err != nil {
			return nil, fmt.Errorf("tableau: employé %s: %w", s.EmployeID, err)
		}
		employes[s.EmployeID] = e
	}

	lignes := make([]dto.TableauLigne, 0, len(sres.shifts))
	boutiquesVues := make(map[string]bool)
	var boutiques []string

	for _, s := range sres.shifts {
		classement, err := presence.ClassifierShift(s, now, parEmploye[s.EmployeID], seuilMin)
		if err != nil {
			return nil, fmt.Errorf("tableau: shift %s: %w", s.ID, err)
		}

		ligne := dto.TableauLigne{
			ShiftID:       s.ID,
			Boutique:      s.Boutique,
			StartAt:       s.StartAt,
			EndAt:         s.EndAt,
			Statut:        string(classement.Statut),
			MinutesRetard: classement.MinutesRetard,
		}
		if e := employes[s.EmployeID]; e != nil {
			ligne.Employe = dto.EmployeRef{ID: e.ID, Nom: e.Nom, Email: e.Email}
		} else {
			ligne.Employe = dto.EmployeRef{ID: s.EmployeID}
		}
		if dp := classement.DernierPointage; dp != nil {
			ligne.DernierPointage = &dto.PointageResponse{
				ID:         dp.ID,
				EmployeID:  dp.EmployeID,
				Type:       dp.Type,
				Horodatage: dp.Horodatage,
			}
		}
		lignes = append(lignes, ligne)

		if s.Boutique != "" && !boutiquesVues[s.Boutique] {
			boutiquesVues[s.Boutique] = true
			boutiques = append(boutiques, s.Boutique)
		}
	}

	return &dto.TableauResponse{
		Lignes:    lignes,
		Boutiques: boutiques,
		From:      debut,
		To:        fin,
		SeuilMin:  seuilMin,
	}, nil
}
