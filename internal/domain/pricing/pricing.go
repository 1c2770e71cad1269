// Package pricing concentra toda la aritmética de precios del punto de venta.
//
// Regla central: los precios del catálogo ya traen el IVA (13%) incluido. El
// total de un carrito es la suma directa de precio × cantidad; el subtotal se
// obtiene DIVIDIENDO entre 1.13, nunca sumando IVA encima. El redondeo a dos
// decimales se aplica solo al presentar o armar el payload, no durante la
// acumulación, para no arrastrar error de redondeo.
//
// Este paquete es la única fuente de verdad para ese desglose: la caja, el
// modal de pago y el armado de la venta consumen estas funciones en lugar de
// repetir la fórmula cada uno por su lado.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

// Tasa de IVA vigente (El Salvador). El divisor extrae la base imponible de
// un precio que ya incluye el impuesto.
var (
	VATRate    = decimal.NewFromFloat(0.13)
	vatDivisor = decimal.NewFromInt(1).Add(VATRate) // 1.13
)

// Totals es el desglose de un carrito: Total con IVA incluido, Subtotal sin
// IVA y el IVA extraído. Los tres valores se mantienen sin redondear; usar
// Rounded() en el borde de presentación.
type Totals struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// CartTotals calcula el desglose de un carrito completo. Carrito vacío
// devuelve ceros.
func CartTotals(items []entity.CartItem) Totals {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	subtotal := total.Div(vatDivisor)
	return Totals{
		Subtotal: subtotal,
		VAT:      total.Sub(subtotal),
		Total:    total,
	}
}

// Rounded devuelve el desglose redondeado a dos decimales para presentación
// o payload. El IVA se recalcula como Total − Subtotal redondeados para que
// la identidad subtotal + IVA = total se conserve también tras el redondeo.
func (t Totals) Rounded() Totals {
	total := Round2(t.Total)
	subtotal := Round2(t.Subtotal)
	return Totals{
		Subtotal: subtotal,
		VAT:      total.Sub(subtotal),
		Total:    total,
	}
}

// LineFigures son los montos por línea que espera el ERP en el detalle de la
// venta. SubjectAmount y SubjectAmountWithVAT se redondean cada uno por su
// lado a partir de los productos SIN redondear (no se derivan uno del otro),
// porque así los calcula y valida el ERP.
type LineFigures struct {
	UnitPriceExVAT       decimal.Decimal // precio unitario sin IVA, redondeado
	SubjectAmount        decimal.Decimal // base imponible de la línea
	SubjectAmountWithVAT decimal.Decimal // total de la línea con IVA
}

// Line calcula los montos de una línea del carrito.
func Line(it entity.CartItem) LineFigures {
	qty := decimal.NewFromInt(it.Quantity)
	exVAT := it.Price.Div(vatDivisor)
	return LineFigures{
		UnitPriceExVAT:       Round2(exVAT),
		SubjectAmount:        Round2(exVAT.Mul(qty)),
		SubjectAmountWithVAT: Round2(it.Price.Mul(qty)),
	}
}

// Round2 redondea a dos decimales (half-up, igual que el ERP).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
