package repository

import (
	"context"
	"time"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
)

// ShiftRepository définit le port de persistance pour Shift.
//
// Les deux listages par fenêtre temporelle retournent les shifts dont le
// start_at tombe dans [from, to), triés par start_at croissant puis id
// croissant — l'ordre sur lequel s'appuie l'appariement déterministe.
type ShiftRepository interface {
	Create(s *entity.Shift) error
	CreateBatch(shifts []*entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	Update(s *entity.Shift) error
	Delete(id string) error

	// ListByEmployeStartBetween: shifts d'un seul employé sur la fenêtre.
	ListByEmployeStartBetween(ctx context.Context, employeID string, from, to time.Time) ([]*entity.Shift, error)
	// ListStartBetween: tous les employés sur la fenêtre, filtre boutique
	// optionnel (vide = toutes).
	ListStartBetween(ctx context.Context, from, to time.Time, boutique string) ([]*entity.Shift, error)
}
