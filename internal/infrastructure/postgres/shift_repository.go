package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo implémentation du port ShiftRepository sur PostgreSQL.
type ShiftRepo struct {
	pool *pgxpool.Pool
}

// NewShiftRepository construit l'adaptateur de persistance des shifts.
func NewShiftRepository(pool *pgxpool.Pool) *ShiftRepo {
	return &ShiftRepo{pool: pool}
}

const shiftColumns = `id, employe_id, COALESCE(boutique, ''), start_at, end_at, publie, created_at, updated_at`

// Create persiste un nouveau shift.
func (r *ShiftRepo) Create(s *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, employe_id, boutique, start_at, end_at, publie, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.EmployeID, s.Boutique, s.StartAt, s.EndAt, s.Publie, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// CreateBatch insère les shifts d'une semaine en un seul batch pgx.
func (r *ShiftRepo) CreateBatch(shifts []*entity.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO shifts (id, employe_id, boutique, start_at, end_at, publie, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	for _, s := range shifts {
		batch.Queue(query, s.ID, s.EmployeID, s.Boutique, s.StartAt, s.EndAt, s.Publie, s.CreatedAt, s.UpdatedAt)
	}
	br := r.pool.SendBatch(context.Background(), batch)
	defer br.Close()
	for range shifts {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert shifts batch: %w", err)
		}
	}
	return nil
}

// GetByID obtient un shift par ID (nil si absent).
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE id = $1`
	var s entity.Shift
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.EmployeID, &s.Boutique, &s.StartAt, &s.EndAt, &s.Publie, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

// Update met à jour un shift.
func (r *ShiftRepo) Update(s *entity.Shift) error {
	query := `
		UPDATE shifts
		SET boutique = NULLIF($2, ''), start_at = $3, end_at = $4, publie = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		s.ID, s.Boutique, s.StartAt, s.EndAt, s.Publie, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	return nil
}

// Delete supprime un shift par ID.
func (r *ShiftRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}

// ListByEmployeStartBetween liste les shifts d'un employé dont start_at tombe
// dans [from, to), tri start_at puis id croissants.
func (r *ShiftRepo) ListByEmployeStartBetween(ctx context.Context, employeID string, from, to time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + ` FROM shifts
		WHERE employe_id = $1 AND start_at >= $2 AND start_at < $3
		ORDER BY start_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, employeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list shifts employe: %w", err)
	}
	defer rows.Close()
	return scanShifts(rows)
}

// ListStartBetween liste les shifts de tous les employés sur [from, to),
// filtre boutique optionnel, tri start_at puis id croissants.
func (r *ShiftRepo) ListStartBetween(ctx context.Context, from, to time.Time, boutique string) ([]*entity.Shift, error) {
	query := `
		SELECT ` + shiftColumns + ` FROM shifts
		WHERE start_at >= $1 AND start_at < $2
		  AND ($3 = '' OR boutique = $3)
		ORDER BY start_at ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, from, to, boutique)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()
	return scanShifts(rows)
}

func scanShifts(rows pgx.Rows) ([]*entity.Shift, error) {
	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.EmployeID, &s.Boutique, &s.StartAt, &s.EndAt, &s.Publie, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
