package usecase

import (
	"context"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// AlerteUseCase consultation des alertes de retard. La création passe
// exclusivement par l'émetteur du cas d'usage pointage; ici lecture seule,
// jamais de modification ni de suppression (l'acquittement est externe).
type AlerteUseCase struct {
	repo repository.AlerteRepository
}

// NewAlerteUseCase construit le cas d'usage.
func NewAlerteUseCase(repo repository.AlerteRepository) *AlerteUseCase {
	return &AlerteUseCase{repo: repo}
}

// Lister retourne les alertes les plus récentes d'abord.
func (uc *AlerteUseCase) Lister(ctx context.Context, limit int) (*dto.AlerteListResponse, error) {
	rows, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AlerteResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.AlerteResponse{
			ID: r.Alerte.ID,
			Employe: dto.EmployeRef{
				ID:    r.Alerte.EmployeID,
				Nom:   r.EmployeNom,
				Email: r.EmployeEmail,
			},
			PointageID:    r.Alerte.PointageID,
			ShiftID:       r.Alerte.ShiftID,
			Type:          r.Alerte.Type,
			PointageTs:    r.Alerte.PointageTs,
			RetardMinutes: r.Alerte.RetardMinutes,
			SeuilMinutes:  r.Alerte.SeuilMinutes,
			Note:          r.Alerte.Note,
			CreatedAt:     r.Alerte.CreatedAt,
		})
	}
	return &dto.AlerteListResponse{Items: items}, nil
}
