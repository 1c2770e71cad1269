package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRecord guarda el resultado de un checkout ya enviado al ERP,
// indexado por la Idempotency-Key del cliente. Si la misma clave vuelve a
// llegar antes de expirar, se responde con este registro en lugar de crear
// una segunda venta. Deshabilitar el botón en el front no alcanza: un
// reintento de red puede duplicar la venta igual.
type CheckoutRecord struct {
	Key            string
	UserID         string
	SaleID         int64
	DocumentNumber int64
	DocumentTypeID int64
	Subtotal       decimal.Decimal
	VAT            decimal.Decimal
	Total          decimal.Decimal
	DTEIssued      bool
	DTEError       string
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// IsExpired indica si el registro ya venció y la clave puede reutilizarse.
func (r *CheckoutRecord) IsExpired() bool {
	return time.Now().After(r.ExpiresAt)
}

// IsPending indica que la clave está reservada por un checkout en vuelo
// que todavía no registró su resultado (sin venta asignada).
func (r *CheckoutRecord) IsPending() bool {
	return r.SaleID == 0
}
