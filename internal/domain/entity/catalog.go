package entity

// SalePoint es un punto de venta (caja/sucursal) del ERP.
type SalePoint struct {
	ID          int64
	Name        string
	Street      string
	ControlCode string
}

// PaymentForm es una forma de pago (efectivo, transferencia, cheque...).
type PaymentForm struct {
	ID                     int64
	Name                   string
	IsCash                 bool
	BankAccountIsRequested bool
	IsVisibleOnSales       bool
}

// PaymentTerm es una condición de pago. PaymentPeriod es el plazo en días:
// 0 para contado, 7/15/30... para crédito.
type PaymentTerm struct {
	ID            int64
	Name          string
	PaymentPeriod int
}

// DisplayText es el texto que muestra el front para la condición de pago.
func (t PaymentTerm) DisplayText() string {
	return t.Name
}

// DocumentType es un tipo de documento fiscal del ERP.
type DocumentType struct {
	ID                  int64
	Name                string
	Code                string
	IsElectronicInvoice bool
}
