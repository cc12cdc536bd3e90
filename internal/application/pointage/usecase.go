// Package pointage contient le cas d'usage de la borne de pointage: contrôle
// du PIN, enregistrement du pointage, puis évaluation synchrone du retard et
// émission de l'alerte. L'évaluation passe par les mêmes fonctions pures que le
// tableau de bord (internal/domain/presence) avec le seuil passé explicitement.
package pointage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// UseCase orchestration d'un pointage depuis la borne.
type UseCase struct {
	employes  repository.EmployeRepository
	shifts    repository.ShiftRepository
	pointages repository.PointageRepository
	alertes   repository.AlerteRepository
	fenetre   presence.DayWindow
	now       func() time.Time
}

// NewUseCase construit le cas d'usage. now est injectable pour les tests.
func NewUseCase(
	employes repository.EmployeRepository,
	shifts repository.ShiftRepository,
	pointages repository.PointageRepository,
	alertes repository.AlerteRepository,
	fenetre presence.DayWindow,
) *UseCase {
	return &UseCase{
		employes:  employes,
		shifts:    shifts,
		pointages: pointages,
		alertes:   alertes,
		fenetre:   fenetre,
		now:       time.Now,
	}
}

// WithNow remplace l'horloge (tests).
func (uc *UseCase) WithNow(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Pointer traite un badgeage: vérifie l'employé et son PIN, enregistre le
// pointage, puis pour une ENTREE évalue le retard contre le shift du jour et
// émet l'alerte si le seuil est dépassé. Une SORTIE est enregistrée telle
// quelle, sans évaluation.
func (uc *UseCase) Pointer(ctx context.Context, in dto.PointerRequest, seuilMin int) (*dto.PointerResponse, error) {
	if seuilMin < 0 {
		return nil, domain.ErrSeuilInvalide
	}
	typ := in.Action
	if typ == "" {
		typ = entity.PointageEntree
	}
	if typ != entity.PointageEntree && typ != entity.PointageSortie {
		return nil, domain.ErrInvalidInput
	}

	employe, err := uc.employes.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, domain.ErrEmployeNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employe.PinHash), []byte(in.Pin)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !employe.Actif {
		return nil, domain.ErrEmployeInactif
	}

	now := uc.now()
	p := &entity.Pointage{
		ID:         uuid.New().String(),
		EmployeID:  employe.ID,
		Type:       typ,
		Horodatage: now,
		CreatedAt:  now,
	}
	if err := uc.pointages.Create(ctx, p); err != nil {
		return nil, err
	}

	out := &dto.PointerResponse{
		Message: fmt.Sprintf("Pointage %s OK — %s", typ, employe.Nom),
		Pointage: dto.PointageResponse{
			ID:         p.ID,
			EmployeID:  p.EmployeID,
			Type:       p.Type,
			Horodatage: p.Horodatage,
		},
	}

	retard, shift, err := uc.Evaluer(ctx, employe.ID, p, seuilMin)
	if err != nil {
		return nil, err
	}
	if retard.Evalue {
		out.EnRetard = retard.EnRetard
		if retard.EnRetard {
			out.MinutesRetard = retard.Minutes
			created, err := uc.EmettreAlerte(ctx, employe.ID, shift, p, retard, seuilMin)
			if err != nil {
				return nil, err
			}
			out.AlerteCreee = created
		}
	}
	return out, nil
}

// Evaluer apparie le pointage au shift du jour de l'employé et évalue le
// retard. shift nil et Evalue=false signifient "pointage non apparié" (aucun
// shift ce jour-là) ou "SORTIE": résultats normaux, pas des erreurs.
func (uc *UseCase) Evaluer(ctx context.Context, employeID string, p *entity.Pointage, seuilMin int) (presence.Retard, *entity.Shift, error) {
	if seuilMin < 0 {
		return presence.Retard{}, nil, domain.ErrSeuilInvalide
	}
	if !p.EstEntree() {
		return presence.Retard{}, nil, nil
	}

	debut, fin := uc.fenetre.Bounds(p.Horodatage)
	shifts, err := uc.shifts.ListByEmployeStartBetween(ctx, employeID, debut, fin)
	if err != nil {
		return presence.Retard{}, nil, fmt.Errorf("shifts du jour: %w", err)
	}
	shift := presence.MatchShift(shifts)
	if shift == nil {
		return presence.Retard{}, nil, nil
	}

	retard, err := presence.EvaluerRetard(shift, p, seuilMin)
	if err != nil {
		return presence.Retard{}, nil, err
	}
	return retard, shift, nil
}

// EmettreAlerte enregistre le constat durable d'une ENTREE en retard.
// Idempotent par pointage: rejouer le même pointage (re-livraison temps réel,
// retry réseau, double-tap) ne produit jamais deux alertes; created=false sur
// le doublon. La notification des observateurs est portée par le flux de
// changements externe, pas par l'émetteur.
func (uc *UseCase) EmettreAlerte(ctx context.Context, employeID string, shift *entity.Shift, p *entity.Pointage, retard presence.Retard, seuilMin int) (bool, error) {
	if shift == nil || !retard.EnRetard {
		return false, domain.ErrInvalidInput
	}
	now := uc.now()
	a := &entity.Alerte{
		ID:            uuid.New().String(),
		EmployeID:     employeID,
		PointageID:    p.ID,
		ShiftID:       shift.ID,
		Type:          entity.AlerteTypeRetard,
		PointageTs:    p.Horodatage,
		RetardMinutes: retard.Minutes,
		SeuilMinutes:  seuilMin,
		Note:          fmt.Sprintf("ENTREE %d min après le début du shift (tolérance %d min)", retard.Minutes, seuilMin),
		CreatedAt:     now,
	}
	return uc.alertes.InsertIfAbsent(ctx, a)
}
