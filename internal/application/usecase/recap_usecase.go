package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// RecapUseCase consultation des pointages bruts et récapitulatif des heures
// travaillées (paires ENTREE→SORTIE) avec montant estimé quand l'employé a un
// taux horaire. Le récap est indicatif, il ne participe pas à la
// réconciliation des présences.
type RecapUseCase struct {
	pointages repository.PointageRepository
	employes  repository.EmployeRepository
	fenetre   presence.DayWindow
}

// NewRecapUseCase construit le cas d'usage.
func NewRecapUseCase(pointages repository.PointageRepository, employes repository.EmployeRepository, fenetre presence.DayWindow) *RecapUseCase {
	return &RecapUseCase{pointages: pointages, employes: employes, fenetre: fenetre}
}

// ListerPointages liste les pointages de [from, to) en ordre chronologique,
// tous employés ou un seul.
func (uc *RecapUseCase) ListerPointages(ctx context.Context, from, to time.Time, employeID string) (*dto.PointageListResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	var (
		pts []*entity.Pointage
		err error
	)
	if employeID != "" {
		pts, err = uc.pointages.ListByEmployeBetween(ctx, employeID, from, to)
	} else {
		pts, err = uc.pointages.ListBetween(ctx, from, to)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.PointageResponse, 0, len(pts))
	for _, p := range pts {
		items = append(items, dto.PointageResponse{
			ID:         p.ID,
			EmployeID:  p.EmployeID,
			Type:       p.Type,
			Horodatage: p.Horodatage,
		})
	}
	return &dto.PointageListResponse{Items: items, From: from, To: to}, nil
}

// RecapJour agrège les heures travaillées du jour civil contenant cible.
// Une ENTREE se ferme sur la SORTIE suivante; une ENTREE restée ouverte
// (employé encore présent) n'est pas comptée.
func (uc *RecapUseCase) RecapJour(ctx context.Context, cible time.Time) (*dto.RecapResponse, error) {
	debut, fin := uc.fenetre.Bounds(cible)
	pts, err := uc.pointages.ListBetween(ctx, debut, fin)
	if err != nil {
		return nil, err
	}

	parEmploye := make(map[string][]*entity.Pointage)
	for _, p := range pts {
		parEmploye[p.EmployeID] = append(parEmploye[p.EmployeID], p)
	}

	lignes := make([]dto.RecapLigne, 0, len(parEmploye))
	for employeID, liste := range parEmploye {
		heures := heuresTravaillees(liste)
		employe, err := uc.employes.GetByID(employeID)
		if err != nil {
			return nil, err
		}
		ligne := dto.RecapLigne{
			Employe: dto.EmployeRef{ID: employeID},
			Heures:  heures,
		}
		if employe != nil {
			ligne.Employe = dto.EmployeRef{ID: employe.ID, Nom: employe.Nom, Email: employe.Email}
			if employe.TauxHoraire != nil {
				montant := heures.Mul(*employe.TauxHoraire).Round(2)
				ligne.Montant = &montant
			}
		}
		lignes = append(lignes, ligne)
	}

	sort.Slice(lignes, func(i, j int) bool { return lignes[i].Employe.Nom < lignes[j].Employe.Nom })

	return &dto.RecapResponse{From: debut, To: fin, Lignes: lignes}, nil
}

// heuresTravaillees somme les durées ENTREE→SORTIE d'une liste chronologique,
// arrondie au centième d'heure.
func heuresTravaillees(pts []*entity.Pointage) decimal.Decimal {
	var total time.Duration
	var entree *entity.Pointage
	for _, p := range pts {
		switch {
		case p.EstEntree():
			// Double ENTREE: la plus récente fait foi.
			entree = p
		case entree != nil:
			total += p.Horodatage.Sub(entree.Horodatage)
			entree = nil
		}
	}
	return decimal.NewFromFloat(total.Hours()).Round(2)
}
