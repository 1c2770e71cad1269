package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/decima-pos/internal/domain"
)

// ReceiptLine línea del comprobante impreso.
type ReceiptLine struct {
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// ReceiptData datos listos para renderizar el comprobante de una venta.
type ReceiptData struct {
	SaleID         int64
	DocumentNumber string
	ClientName     string
	EmissionDate   string
	Status         string
	Lines          []ReceiptLine
	Subtotal       decimal.Decimal
	VAT            decimal.Decimal
	Total          decimal.Decimal
}

// ReceiptUseCase genera el comprobante PDF de una venta registrada en
// el ERP.
type ReceiptUseCase struct {
	lister    SaleLister
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso de comprobantes.
func NewReceiptUseCase(lister SaleLister, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{lister: lister, generator: generator}
}

// DownloadReceipt recupera la venta del ERP y genera el PDF del
// comprobante. Devuelve domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, saleID int64) (pdfBytes []byte, filename string, err error) {
	if saleID <= 0 {
		return nil, "", domain.ErrInvalidInput
	}
	sale, lines, err := uc.lister.SaleByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	data := &ReceiptData{
		SaleID:         sale.ID,
		DocumentNumber: sale.DocumentNumber,
		ClientName:     sale.ClientName,
		EmissionDate:   sale.EmissionDate,
		Status:         sale.Status,
		Subtotal:       sale.SubjectAmountSum,
		VAT:            sale.TaxAmountSum,
		Total:          sale.Total,
	}
	for _, l := range lines {
		data.Lines = append(data.Lines, ReceiptLine{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.PriceWithVAT,
			Total:     l.SubjectAmountWithVAT,
		})
	}

	pdfBytes, err = uc.generator.Generate(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta_%d.pdf", sale.ID), nil
}
