package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/jhoicas/decima-pos/internal/domain/repository"
)

var _ repository.CheckoutRecordRepository = (*CheckoutRecordRepo)(nil)

// CheckoutRecordRepo implementación del registro de idempotencia de
// checkouts sobre PostgreSQL (tabla checkout_records).
type CheckoutRecordRepo struct {
	pool *pgxpool.Pool
}

// NewCheckoutRecordRepository construye el adaptador de registros de checkout.
func NewCheckoutRecordRepository(pool *pgxpool.Pool) *CheckoutRecordRepo {
	return &CheckoutRecordRepo{pool: pool}
}

// GetByKey devuelve el registro para la clave y usuario, nil si no existe.
func (r *CheckoutRecordRepo) GetByKey(ctx context.Context, key, userID string) (*entity.CheckoutRecord, error) {
	query := `
		SELECT idempotency_key, user_id, sale_id, document_number, document_type_id,
		       subtotal, vat, total, dte_issued, dte_error, created_at, expires_at
		FROM checkout_records WHERE idempotency_key = $1 AND user_id = $2`
	var rec entity.CheckoutRecord
	err := r.pool.QueryRow(ctx, query, key, userID).Scan(
		&rec.Key, &rec.UserID, &rec.SaleID, &rec.DocumentNumber, &rec.DocumentTypeID,
		&rec.Subtotal, &rec.VAT, &rec.Total, &rec.DTEIssued, &rec.DTEError,
		&rec.CreatedAt, &rec.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkout record: %w", err)
	}
	return &rec, nil
}

// Reserve toma la clave con un insert condicional: la fila placeholder
// (sale_id 0) marca el checkout en vuelo. El ON CONFLICT solo gana si la
// fila existente ya venció, así dos peticiones concurrentes con la misma
// clave nunca reservan las dos.
func (r *CheckoutRecordRepo) Reserve(ctx context.Context, key, userID string, now, expiresAt time.Time) (bool, error) {
	query := `
		INSERT INTO checkout_records (idempotency_key, user_id, sale_id, document_number,
			document_type_id, subtotal, vat, total, dte_issued, dte_error, created_at, expires_at)
		VALUES ($1, $2, 0, 0, 0, 0, 0, 0, FALSE, '', $3, $4)
		ON CONFLICT (idempotency_key, user_id) DO UPDATE SET
			sale_id = 0, document_number = 0, document_type_id = 0,
			subtotal = 0, vat = 0, total = 0, dte_issued = FALSE, dte_error = '',
			created_at = $3, expires_at = $4
		WHERE checkout_records.expires_at < $3`
	tag, err := r.pool.Exec(ctx, query, key, userID, now, expiresAt)
	if err != nil {
		return false, fmt.Errorf("reserve checkout key: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Create guarda el resultado final del checkout, sobreescribiendo la
// reservación de la misma clave.
func (r *CheckoutRecordRepo) Create(ctx context.Context, rec *entity.CheckoutRecord) error {
	query := `
		INSERT INTO checkout_records (idempotency_key, user_id, sale_id, document_number,
			document_type_id, subtotal, vat, total, dte_issued, dte_error, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (idempotency_key, user_id) DO UPDATE SET
			sale_id = $3, document_number = $4, document_type_id = $5,
			subtotal = $6, vat = $7, total = $8, dte_issued = $9, dte_error = $10,
			created_at = $11, expires_at = $12`
	_, err := r.pool.Exec(ctx, query,
		rec.Key, rec.UserID, rec.SaleID, rec.DocumentNumber, rec.DocumentTypeID,
		rec.Subtotal, rec.VAT, rec.Total, rec.DTEIssued, rec.DTEError,
		rec.CreatedAt, rec.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert checkout record: %w", err)
	}
	return nil
}

// Delete libera la clave para que un reintento pueda volver a reservarla.
func (r *CheckoutRecordRepo) Delete(ctx context.Context, key, userID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM checkout_records WHERE idempotency_key = $1 AND user_id = $2`, key, userID)
	if err != nil {
		return fmt.Errorf("delete checkout record: %w", err)
	}
	return nil
}

// DeleteExpired limpia registros vencidos.
func (r *CheckoutRecordRepo) DeleteExpired(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM checkout_records WHERE expires_at < $1`, time.Now())
	if err != nil {
		return fmt.Errorf("delete expired checkout records: %w", err)
	}
	return nil
}
