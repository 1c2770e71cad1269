package repository

import (
	"context"
	"time"

	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

// CheckoutRecordRepository define el puerto para el registro de checkouts
// por Idempotency-Key (deduplicación de envíos al ERP).
type CheckoutRecordRepository interface {
	// GetByKey devuelve el registro para la clave y usuario, nil si no existe.
	GetByKey(ctx context.Context, key, userID string) (*entity.CheckoutRecord, error)
	// Reserve toma la clave de forma atómica antes de llamar al ERP.
	// Devuelve false si otra petición ya la tiene y no está vencida.
	Reserve(ctx context.Context, key, userID string, now, expiresAt time.Time) (bool, error)
	// Create guarda el resultado final (sobreescribe la reservación).
	Create(ctx context.Context, rec *entity.CheckoutRecord) error
	// Delete libera la clave, por ejemplo cuando el ERP rechazó la venta.
	Delete(ctx context.Context, key, userID string) error
	// DeleteExpired limpia registros vencidos.
	DeleteExpired(ctx context.Context) error
}
