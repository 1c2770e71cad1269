package dto

import "github.com/shopspring/decimal"

// ArticleResponse artículo normalizado listo para la pantalla de ventas.
// El precio ya incluye IVA, igual que lo entrega el ERP.
type ArticleResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Stock       decimal.Decimal `json:"stock"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	SKU         string          `json:"sku,omitempty"`
	Description string          `json:"description,omitempty"`
	Barcode     string          `json:"barcode,omitempty"`
	UnitMeasure string          `json:"unit_measure,omitempty"`
	UnitSymbol  string          `json:"unit_symbol,omitempty"`
	IsScannable bool            `json:"is_scannable"`
}

// ArticleListResponse artículos más la paginación del ERP.
type ArticleListResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Pagination Pagination        `json:"pagination"`
}

// ArticleListQuery filtros de la búsqueda de artículos.
type ArticleListQuery struct {
	Search  string `query:"search"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// ClientResponse cliente normalizado. NRC presente implica que la venta
// sale como Crédito Fiscal salvo que se elija otro tipo de documento.
type ClientResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	TaxID      string `json:"tax_id,omitempty"`
	NRC        string `json:"nrc,omitempty"`
	DUI        string `json:"dui,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Address    string `json:"address,omitempty"`
	IsVIP      bool   `json:"is_vip"`
	IsEmployee bool   `json:"is_employee"`
}

// ClientListResponse clientes más paginación.
type ClientListResponse struct {
	Clients    []ClientResponse `json:"clients"`
	Pagination Pagination       `json:"pagination"`
}

// ClientListQuery filtros de la búsqueda de clientes.
type ClientListQuery struct {
	Search  string `query:"search"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// DocumentTypeResponse tipo de documento tributario.
type DocumentTypeResponse struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Code                string `json:"code,omitempty"`
	IsElectronicInvoice bool   `json:"is_electronic_invoice"`
}

// PaymentTermResponse condición de pago. DisplayText ya viene armado
// ("Contado", "Crédito 30 días").
type PaymentTermResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	PaymentPeriod int    `json:"payment_period"`
	DisplayText   string `json:"display_text"`
}

// PaymentFormResponse forma de pago visible en ventas.
type PaymentFormResponse struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	IsCash                 bool   `json:"is_cash"`
	BankAccountIsRequested bool   `json:"bank_account_is_requested"`
}

// SalePointResponse punto de venta (caja).
type SalePointResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Street      string `json:"street,omitempty"`
	ControlCode string `json:"control_code,omitempty"`
}
