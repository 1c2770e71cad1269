package pricing

import (
	"strings"

	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

// Tipos de documento fiscal según el catálogo del ERP.
const (
	DocTypeConsumidorFinal int64 = 1 // Factura de Consumidor Final
	DocTypeCreditoFiscal   int64 = 2 // Comprobante de Crédito Fiscal (CCF)
)

// SelectDocumentType decide el tipo de documento de la venta.
//
// Si el operador eligió uno explícitamente (explicit > 0), esa elección
// manda. Si no, la regla fiscal: cliente con NRC es contribuyente de IVA y
// recibe Crédito Fiscal; sin NRC, Factura de Consumidor Final.
//
// Tanto el modal de pago como el armado del payload deben pasar por aquí;
// tener la regla en un solo lugar evita que ambos diverjan.
func SelectDocumentType(client *entity.Client, explicit int64) int64 {
	if explicit > 0 {
		return explicit
	}
	if client != nil && strings.TrimSpace(client.NRC) != "" {
		return DocTypeCreditoFiscal
	}
	return DocTypeConsumidorFinal
}
