package entity

import "github.com/shopspring/decimal"

// Article es un artículo del catálogo del ERP. El precio viene SIEMPRE con IVA
// incluido; el desglose se hace en el módulo de pricing, nunca aquí.
type Article struct {
	ID          int64
	Name        string
	Price       decimal.Decimal // precio de venta con IVA incluido
	Stock       decimal.Decimal // master_available_balance
	Image       string
	Category    string
	Brand       string
	SKU         string // internal_reference
	Description string
	Barcode     string
	UnitMeasure string
	UnitSymbol  string
	IsActive    bool
	IsScannable bool
}
