package repository

import (
	"context"
	"time"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
)

// PointageRepository définit le port de persistance pour Pointage (append-only:
// pas d'update ni de delete, un pointage est immuable une fois créé).
// Tous les listages sont chronologiques (horodatage croissant).
type PointageRepository interface {
	Create(ctx context.Context, p *entity.Pointage) error
	ListByEmployeBetween(ctx context.Context, employeID string, from, to time.Time) ([]*entity.Pointage, error)
	ListByEmployesBetween(ctx context.Context, employeIDs []string, from, to time.Time) ([]*entity.Pointage, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Pointage, error)
}
