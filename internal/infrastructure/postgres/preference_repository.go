package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/decima-pos/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo implementación del puerto PreferenceRepository sobre
// PostgreSQL (tabla user_preferences, una fila por usuario).
type PreferenceRepo struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository construye el adaptador de preferencias de caja.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// GetSalePoint devuelve el punto de venta recordado para el usuario,
// 0 si nunca eligió uno.
func (r *PreferenceRepo) GetSalePoint(ctx context.Context, userID string) (int64, error) {
	var salePointID int64
	err := r.pool.QueryRow(ctx,
		`SELECT sale_point_id FROM user_preferences WHERE user_id = $1`, userID,
	).Scan(&salePointID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get sale point: %w", err)
	}
	return salePointID, nil
}

// SetSalePoint guarda el punto de venta del usuario (upsert).
func (r *PreferenceRepo) SetSalePoint(ctx context.Context, userID string, salePointID int64) error {
	query := `
		INSERT INTO user_preferences (user_id, sale_point_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET sale_point_id = $2, updated_at = $3`
	_, err := r.pool.Exec(ctx, query, userID, salePointID, time.Now())
	if err != nil {
		return fmt.Errorf("set sale point: %w", err)
	}
	return nil
}
