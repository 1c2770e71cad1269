package sales

import (
	"context"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

// SaleSubmitter escritura de ventas contra el ERP Decima: crea la venta
// y dispara la preparación del DTE. Son dos llamadas separadas porque
// así las expone el ERP; la segunda puede fallar con la venta ya creada.
type SaleSubmitter interface {
	CreateSale(ctx context.Context, payload *SalePayload) (int64, error)
	PrepareElectronicInvoice(ctx context.Context, saleID int64) error
}

// SalesQuery filtros del listado de ventas del ERP.
type SalesQuery struct {
	Date    string // YYYY-MM-DD, vacío lista sin filtro de fecha
	Page    int
	PerPage int
}

// SaleLister lectura de ventas ya registradas en el ERP.
type SaleLister interface {
	Sales(ctx context.Context, q SalesQuery) ([]entity.SaleSummary, catalog.Page, error)
	SaleByID(ctx context.Context, id int64) (*entity.SaleSummary, []entity.SaleLine, error)
}

// CheckoutCatalog lecturas del ERP que necesita el checkout: el cliente
// (por el NRC, que decide el tipo de documento) y las condiciones de
// pago (el plazo define la fecha de pago).
type CheckoutCatalog interface {
	ClientByID(ctx context.Context, id int64) (*entity.Client, error)
	PaymentTerms(ctx context.Context) ([]entity.PaymentTerm, error)
}

// ReceiptGenerator renderiza el comprobante de una venta en PDF.
type ReceiptGenerator interface {
	Generate(ctx context.Context, r *ReceiptData) ([]byte, error)
}
