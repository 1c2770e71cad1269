package dto

import "github.com/shopspring/decimal"

// CheckoutItem línea del carrito tal como la envía la caja. El precio
// unitario incluye IVA.
type CheckoutItem struct {
	ArticleID int64           `json:"article_id" validate:"required"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price" validate:"required"`
	Quantity  int64           `json:"quantity" validate:"required,min=1"`
}

// PaymentDistributionEntry monto asignado a una forma de pago en un
// pago combinado.
type PaymentDistributionEntry struct {
	PaymentFormID int64           `json:"payment_form_id"`
	Amount        decimal.Decimal `json:"amount"`
}

// CheckoutRequest solicitud de cierre de venta. DocumentTypeID en cero
// deja que el servidor lo resuelva según el NRC del cliente.
type CheckoutRequest struct {
	Items               []CheckoutItem             `json:"items" validate:"required,min=1"`
	ClientID            int64                      `json:"client_id"`
	SalePointID         int64                      `json:"sale_point_id"`
	PaymentTermID       int64                      `json:"payment_term_id"`
	PaymentFormID       int64                      `json:"payment_form_id"`
	DocumentTypeID      int64                      `json:"document_type_id"`
	CombinedPayment     bool                       `json:"combined_payment"`
	PaymentDistribution []PaymentDistributionEntry `json:"payment_distribution"`
	Remark              string                     `json:"remark"`
}

// CheckoutResponse resultado del cierre. DTEIssued en falso con venta
// creada es un éxito parcial: la venta existe en el ERP pero el DTE
// quedó pendiente de reintento.
type CheckoutResponse struct {
	SaleID         int64           `json:"sale_id"`
	DocumentNumber string          `json:"document_number"`
	DocumentTypeID int64           `json:"document_type_id"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	VAT            decimal.Decimal `json:"vat"`
	Total          decimal.Decimal `json:"total"`
	DTEIssued      bool            `json:"dte_issued"`
	DTEError       string          `json:"dte_error,omitempty"`
	Replayed       bool            `json:"replayed"`
}

// SaleSummaryResponse fila del listado de ventas del día.
type SaleSummaryResponse struct {
	ID             int64           `json:"id"`
	DocumentNumber string          `json:"document_number"`
	ClientName     string          `json:"client_name"`
	Date           string          `json:"date"`
	Total          decimal.Decimal `json:"total"`
	Status         string          `json:"status"`
	DTEStatus      string          `json:"dte_status,omitempty"`
}

// SaleListResponse ventas más paginación.
type SaleListResponse struct {
	Sales      []SaleSummaryResponse `json:"sales"`
	Pagination Pagination            `json:"pagination"`
}

// SaleListQuery filtros del listado de ventas.
type SaleListQuery struct {
	Date    string `query:"date"`
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
}

// SalePointUpdateRequest selección de caja de la sesión.
type SalePointUpdateRequest struct {
	SalePointID int64 `json:"sale_point_id" validate:"required"`
}
