package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// PlanningPDFGenerator port de génération du PDF hebdomadaire (affiché en
// boutique). Implémenté côté infrastructure (Maroto).
type PlanningPDFGenerator interface {
	GeneratePlanningPDF(ctx context.Context, from, to time.Time, lignes []dto.ShiftResponse) ([]byte, error)
}

// PlanningUseCase cas d'usage du planning hebdomadaire.
type PlanningUseCase struct {
	shifts   repository.ShiftRepository
	employes repository.EmployeRepository
	pdf      PlanningPDFGenerator
}

// NewPlanningUseCase construit le cas d'usage. pdf peut être nil (export désactivé).
func NewPlanningUseCase(shifts repository.ShiftRepository, employes repository.EmployeRepository, pdf PlanningPDFGenerator) *PlanningUseCase {
	return &PlanningUseCase{shifts: shifts, employes: employes, pdf: pdf}
}

// Lister liste les shifts dont le début tombe dans [from, to), employé joint,
// filtre boutique optionnel.
func (uc *PlanningUseCase) Lister(ctx context.Context, from, to time.Time, boutique string) (*dto.PlanningResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	shifts, err := uc.shifts.ListStartBetween(ctx, from, to, boutique)
	if err != nil {
		return nil, err
	}
	items, err := uc.joindreEmployes(shifts)
	if err != nil {
		return nil, err
	}
	return &dto.PlanningResponse{Items: items, From: from, To: to}, nil
}

// MonPlanning liste les shifts d'un employé (par email) sur [from, to).
func (uc *PlanningUseCase) MonPlanning(ctx context.Context, email string, from, to time.Time) (*dto.PlanningResponse, error) {
	if !to.After(from) {
		return nil, domain.ErrInvalidInput
	}
	employe, err := uc.employes.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, domain.ErrEmployeNotFound
	}
	shifts, err := uc.shifts.ListByEmployeStartBetween(ctx, employe.ID, from, to)
	if err != nil {
		return nil, err
	}
	ref := dto.EmployeRef{ID: employe.ID, Nom: employe.Nom, Email: employe.Email}
	items := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		items = append(items, toShiftResponse(s, ref))
	}
	return &dto.PlanningResponse{Items: items, From: from, To: to}, nil
}

// CreerSemaine crée en lot les shifts d'une semaine, référencés par email.
// Les emails inconnus sont ignorés et remontés dans la réponse; si aucun ne
// correspond, ErrInvalidInput (comportement historique du formulaire).
func (uc *PlanningUseCase) CreerSemaine(ctx context.Context, in dto.CreatePlanningRequest) (*dto.CreatePlanningResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	parEmail := make(map[string]*entity.Employe)
	var inconnus []string
	var batch []*entity.Shift

	for _, item := range in.Items {
		if !item.EndAt.After(item.StartAt) {
			return nil, domain.ErrInvalidInput
		}
		employe, ok := parEmail[item.Email]
		if !ok {
			var err error
			employe, err = uc.employes.GetByEmail(item.Email)
			if err != nil {
				return nil, err
			}
			parEmail[item.Email] = employe
		}
		if employe == nil {
			inconnus = append(inconnus, item.Email)
			continue
		}
		batch = append(batch, &entity.Shift{
			ID:        uuid.New().String(),
			EmployeID: employe.ID,
			Boutique:  item.Boutique,
			StartAt:   item.StartAt,
			EndAt:     item.EndAt,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if len(batch) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.shifts.CreateBatch(batch); err != nil {
		return nil, err
	}
	return &dto.CreatePlanningResponse{Crees: len(batch), EmailsInconnus: dedupe(inconnus)}, nil
}

// Update modifie un shift non publié (nil = champ inchangé).
// Un shift publié est figé: ErrShiftPublie.
func (uc *PlanningUseCase) Update(ctx context.Context, id string, in dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	s, err := uc.shifts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if s.Publie {
		return nil, domain.ErrShiftPublie
	}
	if in.Boutique != nil {
		s.Boutique = *in.Boutique
	}
	if in.StartAt != nil {
		s.StartAt = *in.StartAt
	}
	if in.EndAt != nil {
		s.EndAt = *in.EndAt
	}
	if !s.EndAt.After(s.StartAt) {
		return nil, domain.ErrInvalidInput
	}
	s.UpdatedAt = time.Now()
	if err := uc.shifts.Update(s); err != nil {
		return nil, err
	}
	employe, err := uc.employes.GetByID(s.EmployeID)
	if err != nil {
		return nil, err
	}
	ref := dto.EmployeRef{ID: s.EmployeID}
	if employe != nil {
		ref = dto.EmployeRef{ID: employe.ID, Nom: employe.Nom, Email: employe.Email}
	}
	out := toShiftResponse(s, ref)
	return &out, nil
}

// Publier fige un shift: il n'est plus éditable. La réconciliation des
// pointages ignore ce drapeau.
func (uc *PlanningUseCase) Publier(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	s, err := uc.shifts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	s.Publie = true
	s.UpdatedAt = time.Now()
	if err := uc.shifts.Update(s); err != nil {
		return nil, err
	}
	employe, err := uc.employes.GetByID(s.EmployeID)
	if err != nil {
		return nil, err
	}
	ref := dto.EmployeRef{ID: s.EmployeID}
	if employe != nil {
		ref = dto.EmployeRef{ID: employe.ID, Nom: employe.Nom, Email: employe.Email}
	}
	out := toShiftResponse(s, ref)
	return &out, nil
}

// Delete supprime un shift non publié.
func (uc *PlanningUseCase) Delete(ctx context.Context, id string) error {
	s, err := uc.shifts.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNotFound
	}
	if s.Publie {
		return domain.ErrShiftPublie
	}
	return uc.shifts.Delete(id)
}

// ExporterPDF génère le PDF de la fenêtre demandée.
func (uc *PlanningUseCase) ExporterPDF(ctx context.Context, from, to time.Time, boutique string) ([]byte, error) {
	if uc.pdf == nil {
		return nil, domain.ErrInvalidInput
	}
	planning, err := uc.Lister(ctx, from, to, boutique)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePlanningPDF(ctx, from, to, planning.Items)
}

func (uc *PlanningUseCase) joindreEmployes(shifts []*entity.Shift) ([]dto.ShiftResponse, error) {
	cache := make(map[string]dto.EmployeRef)
	items := make([]dto.ShiftResponse, 0, len(shifts))
	for _, s := range shifts {
		ref, ok := cache[s.EmployeID]
		if !ok {
			employe, err := uc.employes.GetByID(s.EmployeID)
			if err != nil {
				return nil, err
			}
			ref = dto.EmployeRef{ID: s.EmployeID}
			if employe != nil {
				ref = dto.EmployeRef{ID: employe.ID, Nom: employe.Nom, Email: employe.Email}
			}
			cache[s.EmployeID] = ref
		}
		items = append(items, toShiftResponse(s, ref))
	}
	return items, nil
}

func toShiftResponse(s *entity.Shift, employe dto.EmployeRef) dto.ShiftResponse {
	return dto.ShiftResponse{
		ID:       s.ID,
		Boutique: s.Boutique,
		StartAt:  s.StartAt,
		EndAt:    s.EndAt,
		Publie:   s.Publie,
		Employe:  employe,
	}
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	vus := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !vus[s] {
			vus[s] = true
			out = append(out, s)
		}
	}
	return out
}
