package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/jhoicas/decima-pos/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia: un artículo a $11.30 con IVA incluido debe desglosar
// exactamente en base $10.00 + IVA $1.30. Si alguien toca la fórmula (por
// ejemplo sumando IVA encima en lugar de extraerlo), este test lo detecta de
// inmediato.
// ──────────────────────────────────────────────────────────────────────────────

func item(id int64, price string, qty int64) entity.CartItem {
	return entity.CartItem{
		ArticleID: id,
		Name:      "artículo de prueba",
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestCartTotals_VectorExacto(t *testing.T) {
	totals := pricing.CartTotals([]entity.CartItem{item(1, "11.30", 1)}).Rounded()

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("10.00")),
		"subtotal esperado 10.00, obtenido %s", totals.Subtotal)
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("1.30")),
		"IVA esperado 1.30, obtenido %s", totals.VAT)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("11.30")),
		"total esperado 11.30, obtenido %s", totals.Total)
}

func TestCartTotals_CarritoVacio(t *testing.T) {
	totals := pricing.CartTotals(nil)

	assert.True(t, totals.Subtotal.IsZero(), "subtotal de carrito vacío debe ser 0")
	assert.True(t, totals.VAT.IsZero(), "IVA de carrito vacío debe ser 0")
	assert.True(t, totals.Total.IsZero(), "total de carrito vacío debe ser 0")
}

// TestCartTotals_IdentidadSubtotalMasIVA verifica que subtotal + IVA = total
// dentro de un centavo para carritos variados, incluso tras el redondeo.
func TestCartTotals_IdentidadSubtotalMasIVA(t *testing.T) {
	carts := [][]entity.CartItem{
		{item(1, "0.85", 3), item(2, "11.30", 1)},
		{item(3, "19.99", 7)},
		{item(4, "1.01", 1), item(5, "2.02", 2), item(6, "3.03", 3)},
		{item(7, "1250.45", 12), item(8, "0.10", 99)},
	}
	tolerance := decimal.RequireFromString("0.01")

	for _, cart := range carts {
		totals := pricing.CartTotals(cart).Rounded()
		diff := totals.Subtotal.Add(totals.VAT).Sub(totals.Total).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"subtotal %s + IVA %s debe igualar total %s (dif %s)",
			totals.Subtotal, totals.VAT, totals.Total, diff)
	}
}

// TestCartTotals_NoAcumulaRedondeo verifica que el redondeo se aplica al final
// y no línea por línea durante la acumulación: 3 × 0.33 con IVA incluido.
func TestCartTotals_NoAcumulaRedondeo(t *testing.T) {
	totals := pricing.CartTotals([]entity.CartItem{item(1, "0.33", 3)})

	require.True(t, totals.Total.Equal(decimal.RequireFromString("0.99")))
	// El subtotal sin redondear conserva más de dos decimales.
	assert.False(t, totals.Subtotal.Equal(pricing.Round2(totals.Subtotal)),
		"el subtotal intermedio no debe venir redondeado")
}

func TestLine_MontosIndependientes(t *testing.T) {
	// 2 × $11.30: base unitaria 10.00, base de línea 20.00, línea con IVA 22.60.
	fig := pricing.Line(item(1, "11.30", 2))

	assert.True(t, fig.UnitPriceExVAT.Equal(decimal.RequireFromString("10.00")))
	assert.True(t, fig.SubjectAmount.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, fig.SubjectAmountWithVAT.Equal(decimal.RequireFromString("22.60")))
}

// TestLine_RedondeoDesdeProductoSinRedondear verifica que la base de línea se
// redondea desde el producto sin redondear, no desde el unitario ya
// redondeado: 7 × $1.99 → base 12.32 (7 × 1.760… = 12.3247…), mientras que
// 7 × 1.76 redondeado daría 12.32 igual pero 3 × 0.85 delata la diferencia.
func TestLine_RedondeoDesdeProductoSinRedondear(t *testing.T) {
	fig := pricing.Line(item(1, "0.85", 3))

	// 0.85/1.13 = 0.752212…; ×3 = 2.256637… → 2.26.
	// Con el unitario redondeado primero sería 0.75 × 3 = 2.25.
	assert.True(t, fig.SubjectAmount.Equal(decimal.RequireFromString("2.26")),
		"base de línea esperada 2.26, obtenida %s", fig.SubjectAmount)
	assert.True(t, fig.UnitPriceExVAT.Equal(decimal.RequireFromString("0.75")))
	assert.True(t, fig.SubjectAmountWithVAT.Equal(decimal.RequireFromString("2.55")))
}
