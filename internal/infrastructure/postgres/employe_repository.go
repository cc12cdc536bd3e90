package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

var _ repository.EmployeRepository = (*EmployeRepo)(nil)

// EmployeRepo implémentation du port EmployeRepository sur PostgreSQL.
type EmployeRepo struct {
	pool *pgxpool.Pool
}

// NewEmployeRepository construit l'adaptateur de persistance des employés.
func NewEmployeRepository(pool *pgxpool.Pool) *EmployeRepo {
	return &EmployeRepo{pool: pool}
}

const employeColumns = `id, nom, email, pin_hash, actif, taux_horaire, created_at, updated_at`

// Create persiste un nouvel employé.
func (r *EmployeRepo) Create(e *entity.Employe) error {
	query := `
		INSERT INTO employes (id, nom, email, pin_hash, actif, taux_horaire, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nom, e.Email, e.PinHash, e.Actif, e.TauxHoraire, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert employe: %w", err)
	}
	return nil
}

// GetByID obtient un employé par ID (nil si absent).
func (r *EmployeRepo) GetByID(id string) (*entity.Employe, error) {
	query := `SELECT ` + employeColumns + ` FROM employes WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtient un employé par email (nil si absent).
func (r *EmployeRepo) GetByEmail(email string) (*entity.Employe, error) {
	query := `SELECT ` + employeColumns + ` FROM employes WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

func (r *EmployeRepo) scanOne(query string, arg any) (*entity.Employe, error) {
	var e entity.Employe
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.Nom, &e.Email, &e.PinHash, &e.Actif, &e.TauxHoraire, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employe: %w", err)
	}
	return &e, nil
}

// Update met à jour un employé.
func (r *EmployeRepo) Update(e *entity.Employe) error {
	query := `
		UPDATE employes
		SET nom = $2, email = $3, pin_hash = $4, actif = $5, taux_horaire = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		e.ID, e.Nom, e.Email, e.PinHash, e.Actif, e.TauxHoraire, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update employe: %w", err)
	}
	return nil
}

// List liste les employés par nom croissant, avec pagination.
func (r *EmployeRepo) List(limit, offset int) ([]*entity.Employe, error) {
	query := `SELECT ` + employeColumns + ` FROM employes ORDER BY nom ASC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employe
	for rows.Next() {
		var e entity.Employe
		if err := rows.Scan(&e.ID, &e.Nom, &e.Email, &e.PinHash, &e.Actif, &e.TauxHoraire, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employe: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete supprime un employé par ID.
func (r *EmployeRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM employes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employe: %w", err)
	}
	return nil
}
