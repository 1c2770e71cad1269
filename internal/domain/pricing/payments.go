package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/decima-pos/internal/domain"
)

// paymentTolerance es la holgura aceptada al conciliar una distribución de
// pagos contra el total (diferencias de redondeo de centavo).
var paymentTolerance = decimal.NewFromFloat(0.01)

// PaymentEntry es una porción del total asignada a una forma de pago.
type PaymentEntry struct {
	PaymentFormID int64
	Amount        decimal.Decimal
}

// Distribute arma la lista de pagos de la venta.
//
// Sin pago combinado: una sola entrada por el total redondeado contra la
// forma de pago por defecto (la primera seleccionada). Con pago combinado:
// se descartan entradas con monto cero o negativo y la suma restante debe
// igualar el total redondeado dentro de la tolerancia; si no cuadra se
// devuelve domain.ErrPaymentMismatch y la venta NO se envía. Cobrar de menos
// en silencio era el comportamiento anterior y está vetado.
func Distribute(total decimal.Decimal, combined bool, entries []PaymentEntry, defaultFormID int64) ([]PaymentEntry, error) {
	rounded := Round2(total)

	if !combined {
		if defaultFormID <= 0 {
			return nil, domain.ErrPaymentFormRequired
		}
		return []PaymentEntry{{PaymentFormID: defaultFormID, Amount: rounded}}, nil
	}

	valid := make([]PaymentEntry, 0, len(entries))
	sum := decimal.Zero
	for _, e := range entries {
		if !e.Amount.GreaterThan(decimal.Zero) {
			continue
		}
		if e.PaymentFormID <= 0 {
			return nil, domain.ErrPaymentFormRequired
		}
		valid = append(valid, e)
		sum = sum.Add(e.Amount)
	}
	if len(valid) == 0 {
		return nil, domain.ErrPaymentMismatch
	}
	if sum.Sub(rounded).Abs().GreaterThan(paymentTolerance) {
		return nil, domain.ErrPaymentMismatch
	}
	return valid, nil
}
