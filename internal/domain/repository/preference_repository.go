package repository

import "context"

// PreferenceRepository persiste las preferencias de caja por usuario.
// Reemplaza el localStorage del navegador: la selección sobrevive a un
// recargo de página y a un cambio de equipo.
type PreferenceRepository interface {
	// GetSalePoint devuelve el punto de venta recordado para el usuario,
	// 0 si nunca eligió uno.
	GetSalePoint(ctx context.Context, userID string) (int64, error)
	// SetSalePoint recuerda el punto de venta elegido (upsert).
	SetSalePoint(ctx context.Context, userID string, salePointID int64) error
}
