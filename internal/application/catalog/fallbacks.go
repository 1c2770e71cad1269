package catalog

import "github.com/jhoicas/decima-pos/internal/domain/entity"

// Catálogos de respaldo cuando el ERP no responde. Son los valores
// reales de la cuenta Decima de la tienda; mantienen la caja operativa
// durante caídas cortas del ERP.

func fallbackDocumentTypes() []entity.DocumentType {
	return []entity.DocumentType{
		{ID: 1, Name: "Factura de Consumidor Final"},
		{ID: 2, Name: "Comprobante de Crédito Fiscal (CCF)"},
		{ID: 3, Name: "Nota de Crédito"},
		{ID: 4, Name: "Nota de Débito"},
	}
}

func fallbackPaymentTerms() []entity.PaymentTerm {
	return []entity.PaymentTerm{
		{ID: 1, Name: "Contado", PaymentPeriod: 0},
		{ID: 2, Name: "Crédito 7 días", PaymentPeriod: 7},
		{ID: 3, Name: "Crédito 15 días", PaymentPeriod: 15},
		{ID: 4, Name: "Crédito 30 días", PaymentPeriod: 30},
	}
}

func fallbackSalePoints() []entity.SalePoint {
	return []entity.SalePoint{
		{ID: 1, Name: "Oficina central", Street: "Calle Siemens #10", ControlCode: "S001P001"},
		{ID: 3, Name: "Sucursal Santa Elena", Street: "Blvd. Santa Elena #10", ControlCode: "M001P001"},
	}
}

func fallbackPaymentForms() []entity.PaymentForm {
	return []entity.PaymentForm{
		{ID: 1, Name: "Efectivo", IsCash: true, IsVisibleOnSales: true},
		{ID: 2, Name: "Transferencia bancaria", BankAccountIsRequested: true, IsVisibleOnSales: true},
		{ID: 4, Name: "Cheque recepción", IsVisibleOnSales: true},
	}
}
