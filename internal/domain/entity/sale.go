package entity

import "github.com/shopspring/decimal"

// CartItem es una línea del carrito de la caja. Price es el precio unitario
// con IVA incluido tal como viene del catálogo. Invariante: Quantity >= 1;
// una línea con cantidad 0 se elimina del carrito, no se envía.
type CartItem struct {
	ArticleID int64
	Name      string
	Price     decimal.Decimal
	Quantity  int64
	Image     string
}

// SaleLine es una línea del detalle de una venta ya registrada en el ERP,
// tal como la devuelve el endpoint de detalle.
type SaleLine struct {
	Name                 string
	Quantity             int64
	PriceWithVAT         decimal.Decimal
	SubjectAmountWithVAT decimal.Decimal
}

// SaleSummary es una fila del listado de ventas del ERP (solo lectura).
// Varios campos del ERP llegan con nombres alternativos según la versión del
// endpoint; el cliente de infraestructura los normaliza a esta forma.
type SaleSummary struct {
	ID               int64
	SaleOrderNumber  string
	DocumentNumber   string
	DocumentType     string
	EmissionDate     string
	RegistrationDate string
	PaymentDate      string
	CollectionDate   string
	ClientID         int64
	ClientName       string
	PaymentCondition string
	Description      string
	Status           string
	Total            decimal.Decimal
	SubjectAmountSum decimal.Decimal
	TaxAmountSum     decimal.Decimal
}
