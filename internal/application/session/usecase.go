package session

import (
	"context"
	"errors"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/repository"
)

// SessionUseCase maneja la preferencia de caja del usuario: qué punto
// de venta usa. Antes vivía en el navegador y se perdía al cambiar de
// equipo; ahora se persiste por usuario.
type SessionUseCase struct {
	prefs   repository.PreferenceRepository
	catalog *catalog.CatalogUseCase
}

// NewSessionUseCase construye el caso de uso de sesión.
func NewSessionUseCase(prefs repository.PreferenceRepository, cat *catalog.CatalogUseCase) *SessionUseCase {
	return &SessionUseCase{prefs: prefs, catalog: cat}
}

// SalePoint devuelve el punto de venta recordado del usuario, 0 si
// nunca eligió uno.
func (uc *SessionUseCase) SalePoint(ctx context.Context, userID string) (int64, error) {
	return uc.prefs.GetSalePoint(ctx, userID)
}

// SetSalePoint valida el punto de venta contra el catálogo del ERP y lo
// persiste como preferencia del usuario.
func (uc *SessionUseCase) SetSalePoint(ctx context.Context, userID string, salePointID int64) error {
	if salePointID <= 0 {
		return domain.ErrSalePointRequired
	}
	points, err := uc.catalog.SalePoints(ctx)
	if err != nil && !errors.Is(err, domain.ErrUpstream) {
		return err
	}
	if err == nil {
		found := false
		for _, p := range points {
			if p.ID == salePointID {
				found = true
				break
			}
		}
		if !found {
			return domain.ErrSalePointRequired
		}
	}
	return uc.prefs.SetSalePoint(ctx, userID, salePointID)
}
