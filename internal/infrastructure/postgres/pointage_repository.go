package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

var _ repository.PointageRepository = (*PointageRepo)(nil)

// PointageRepo implémentation du port PointageRepository sur PostgreSQL.
// Append-only: l'adaptateur n'expose ni update ni delete.
type PointageRepo struct {
	pool *pgxpool.Pool
}

// NewPointageRepository construit l'adaptateur de persistance des pointages.
func NewPointageRepository(pool *pgxpool.Pool) *PointageRepo {
	return &PointageRepo{pool: pool}
}

const pointageColumns = `id, employe_id, type, horodatage, created_at`

// Create persiste un nouveau pointage.
func (r *PointageRepo) Create(ctx context.Context, p *entity.Pointage) error {
	query := `
		INSERT INTO pointages (id, employe_id, type, horodatage, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query, p.ID, p.EmployeID, p.Type, p.Horodatage, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert pointage: %w", err)
	}
	return nil
}

// ListByEmployeBetween liste les pointages d'un employé sur [from, to), ordre chronologique.
func (r *PointageRepo) ListByEmployeBetween(ctx context.Context, employeID string, from, to time.Time) ([]*entity.Pointage, error) {
	query := `
		SELECT ` + pointageColumns + ` FROM pointages
		WHERE employe_id = $1 AND horodatage >= $2 AND horodatage < $3
		ORDER BY horodatage ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, employeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pointages employe: %w", err)
	}
	defer rows.Close()
	return scanPointages(rows)
}

// ListByEmployesBetween liste les pointages d'un ensemble d'employés sur
// [from, to), ordre chronologique. Liste vide en entrée = résultat vide.
func (r *PointageRepo) ListByEmployesBetween(ctx context.Context, employeIDs []string, from, to time.Time) ([]*entity.Pointage, error) {
	if len(employeIDs) == 0 {
		return nil, nil
	}
	query := `
		SELECT ` + pointageColumns + ` FROM pointages
		WHERE employe_id = ANY($1) AND horodatage >= $2 AND horodatage < $3
		ORDER BY horodatage ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, employeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pointages employes: %w", err)
	}
	defer rows.Close()
	return scanPointages(rows)
}

// ListBetween liste tous les pointages sur [from, to), ordre chronologique.
func (r *PointageRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*entity.Pointage, error) {
	query := `
		SELECT ` + pointageColumns + ` FROM pointages
		WHERE horodatage >= $1 AND horodatage < $2
		ORDER BY horodatage ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pointages: %w", err)
	}
	defer rows.Close()
	return scanPointages(rows)
}

func scanPointages(rows pgx.Rows) ([]*entity.Pointage, error) {
	var list []*entity.Pointage
	for rows.Next() {
		var p entity.Pointage
		if err := rows.Scan(&p.ID, &p.EmployeID, &p.Type, &p.Horodatage, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pointage: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
