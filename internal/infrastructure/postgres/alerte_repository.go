package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

var _ repository.AlerteRepository = (*AlerteRepo)(nil)

// AlerteRepo implémentation du port AlerteRepository sur PostgreSQL.
type AlerteRepo struct {
	pool *pgxpool.Pool
}

// NewAlerteRepository construit l'adaptateur de persistance des alertes.
func NewAlerteRepository(pool *pgxpool.Pool) *AlerteRepo {
	return &AlerteRepo{pool: pool}
}

// InsertIfAbsent insère l'alerte sauf si une alerte existe déjà pour le même
// pointage. ON CONFLICT DO NOTHING porte la déduplication côté base, y compris
// sous insertions concurrentes (double-tap sur la borne, re-livraison temps
// réel); la vérification 23505 reste en filet si la contrainte nommée change.
func (r *AlerteRepo) InsertIfAbsent(ctx context.Context, a *entity.Alerte) (bool, error) {
	query := `
		INSERT INTO alertes (id, employe_id, pointage_id, shift_id, type, pointage_ts, retard_minutes, seuil_minutes, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
		ON CONFLICT (pointage_id) DO NOTHING`
	tag, err := r.pool.Exec(ctx, query,
		a.ID, a.EmployeID, a.PointageID, a.ShiftID, a.Type,
		a.PointageTs, a.RetardMinutes, a.SeuilMinutes, a.Note, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			// Doublon détecté: no-op réussi, pas une erreur.
			return false, nil
		}
		return false, fmt.Errorf("insert alerte: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListRecent liste les alertes les plus récentes d'abord, employé joint.
func (r *AlerteRepo) ListRecent(ctx context.Context, limit int) ([]*repository.AlerteAvecEmploye, error) {
	query := `
		SELECT a.id, a.employe_id, a.pointage_id, a.shift_id, a.type,
		       a.pointage_ts, a.retard_minutes, a.seuil_minutes, COALESCE(a.note, ''), a.created_at,
		       e.nom, e.email
		FROM alertes a
		JOIN employes e ON e.id = a.employe_id
		ORDER BY a.created_at DESC
		LIMIT $1`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list alertes: %w", err)
	}
	defer rows.Close()

	var list []*repository.AlerteAvecEmploye
	for rows.Next() {
		var row repository.AlerteAvecEmploye
		if err := rows.Scan(
			&row.Alerte.ID, &row.Alerte.EmployeID, &row.Alerte.PointageID, &row.Alerte.ShiftID, &row.Alerte.Type,
			&row.Alerte.PointageTs, &row.Alerte.RetardMinutes, &row.Alerte.SeuilMinutes, &row.Alerte.Note, &row.Alerte.CreatedAt,
			&row.EmployeNom, &row.EmployeEmail,
		); err != nil {
			return nil, fmt.Errorf("scan alerte: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
