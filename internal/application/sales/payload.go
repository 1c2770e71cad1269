package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/jhoicas/decima-pos/internal/domain/pricing"
)

// Estructuras del payload de venta del ERP Decima (POST income/sale).
// Los montos van como números JSON de dos decimales, no como strings;
// los campos que el ERP espera en null se modelan como punteros nil.

// SaleDetail línea del detalle de la venta.
type SaleDetail struct {
	Quantity             int64   `json:"quantity"`
	Price                float64 `json:"price"`
	PriceWithVAT         float64 `json:"price_with_vat"`
	PriceWithoutDiscount float64 `json:"price_without_discount"`
	RetailPrice          float64 `json:"retail_price"`
	Discount             float64 `json:"discount"`
	Cost                 float64 `json:"cost"`
	NotSubjectAmount     float64 `json:"not_subject_amount"`
	ExemptAmount         float64 `json:"exempt_amount"`
	SubjectAmount        float64 `json:"subject_amount"`
	SubjectAmountWithVAT float64 `json:"subject_amount_with_vat"`
	AlternativeName      string  `json:"alternative_name"`
	Remark               *string `json:"remark"`
	Position             int     `json:"position"`
	ArticleID            int64   `json:"article_id"`
}

// SaleTax resumen de impuestos de la venta. TaxID 1 es IVA.
type SaleTax struct {
	OwnExemptAmountTotal            float64 `json:"own_exempt_amount_total"`
	OwnNotSubjectAmountTotal        float64 `json:"own_not_subject_amount_total"`
	OwnSubjectAmountTotal           float64 `json:"own_subject_amount_total"`
	OwnSubjectAmountTaxTotal        float64 `json:"own_subject_amount_tax_total"`
	ThirdPartyNotSubjectAmountTotal float64 `json:"third_party_not_subject_amount_total"`
	ThirdPartyExemptAmountTotal     float64 `json:"third_party_exempt_amount_total"`
	ThirdPartySubjectAmountTotal    float64 `json:"third_party_subject_amount_total"`
	ThirdPartySubjectAmountTaxTotal float64 `json:"third_party_subject_amount_tax_total"`
	Date                            *string `json:"date"`
	SerialNumber                    *string `json:"serial_number"`
	DocumentNumber                  *string `json:"document_number"`
	Remark                          *string `json:"remark"`
	AdditionalAmount                float64 `json:"additional_amount"`
	TaxID                           int64   `json:"tax_id"`
}

// SalePaymentDetail pago aplicado a la venta.
type SalePaymentDetail struct {
	Amount        float64 `json:"amount"`
	PaymentFormID int64   `json:"payment_form_id"`
}

// SaleAttributes cuerpo completo de la venta.
type SaleAttributes struct {
	Setting          string  `json:"setting"`
	DocumentNumber   int64   `json:"document_number"`
	EmissionDate     string  `json:"emission_date"`
	EmissionTime     string  `json:"emission_time"`
	RegistrationDate string  `json:"registration_date"`
	CollectionDate   string  `json:"collection_date"`
	PaymentDate      string  `json:"payment_date"`
	Remark           string  `json:"remark"`
	OperationType    string  `json:"operation_type"`
	IncomeType       *string `json:"income_type"`
	TransmissionType string  `json:"transmission_type"`
	Type             string  `json:"type"`

	ExportItemType      *string `json:"export_item_type"`
	ExemptionType       *string `json:"exemption_type"`
	ExportType          *string `json:"export_type"`
	ExportItemTypeCode  *string `json:"export_item_type_code"`
	FiscalEnclosureCode *string `json:"fiscal_enclosure_code"`
	FiscalEnclosureName *string `json:"fiscal_enclosure_name"`
	ExportRegimeCode    *string `json:"export_regime_code"`
	ExportRegimeName    *string `json:"export_regime_name"`
	IncotermCode        *string `json:"incoterm_code"`
	IncotermName        *string `json:"incoterm_name"`
	GoodsDispatchTitle  *string `json:"goods_dispatch_title"`
	Local               *string `json:"local"`
	Carrier             *string `json:"carrier"`
	Site                *string `json:"site"`
	Shipments           *string `json:"shipments"`
	Other               *string `json:"other"`

	Status string `json:"status"`

	NotSubjectAmountSum   float64 `json:"not_subject_amount_sum"`
	ExemptAmountSum       float64 `json:"exempt_amount_sum"`
	SubjectAmountSum      float64 `json:"subject_amount_sum"`
	CollectedTaxAmountSum float64 `json:"collected_tax_amount_sum"`
	WithheldTaxAmountSum  float64 `json:"withheld_tax_amount_sum"`
	VATAmount             float64 `json:"vat_amount"`
	CashbackAmount        float64 `json:"cashback_amount"`
	PointsAmount          float64 `json:"points_amount"`
	OtherDiscountsAmount  float64 `json:"other_discounts_amount"`
	SalesTotal            float64 `json:"sales_total"`
	OriginTotal           float64 `json:"origin_total"`
	AdvancedPaidTotal     float64 `json:"advanced_paid_total"`
	PaidTotal             float64 `json:"paid_total"`
	InitialTotalAmountDue float64 `json:"initial_total_amount_due"`
	CreditedCashback      float64 `json:"credited_cashback"`

	ClientID                int64  `json:"client_id"`
	DocumentTypeID          int64  `json:"document_type_id"`
	SalePointID             int64  `json:"sale_point_id"`
	SalePointDocumentTypeID int64  `json:"sale_point_document_type_id"`
	PaymentTermID           int64  `json:"payment_term_id"`
	PaymentFormID           *int64 `json:"payment_form_id"`

	Details  []SaleDetail        `json:"details"`
	Taxes    []SaleTax           `json:"taxes"`
	Payments []SalePaymentDetail `json:"payments"`
}

// SaleData sobre tipado JSON:API que envuelve los atributos.
type SaleData struct {
	Type       string         `json:"type"`
	Attributes SaleAttributes `json:"attributes"`
}

// SalePayload documento completo para POST income/sale.
type SalePayload struct {
	Data SaleData `json:"data"`
}

// BuildInput datos ya resueltos para armar la venta. Client viene del
// ERP (se necesita el NRC); PaymentTerm define el plazo de pago.
type BuildInput struct {
	Items           []entity.CartItem
	Client          *entity.Client
	SalePointID     int64
	PaymentTerm     *entity.PaymentTerm
	PaymentFormID   int64
	DocumentTypeID  int64 // 0 resuelve automático según NRC del cliente
	CombinedPayment bool
	Distribution    []pricing.PaymentEntry
	Remark          string
	Now             time.Time
}

// BuildResult payload listo más los datos que la caja necesita mostrar.
type BuildResult struct {
	Payload        *SalePayload
	DocumentNumber int64
	DocumentTypeID int64
	Subtotal       decimal.Decimal
	VAT            decimal.Decimal
	Total          decimal.Decimal
}

const defaultRemark = "Venta POS"

// BuildSalePayload arma el documento de venta para el ERP.
//
// Los totales del resumen se calculan sumando los montos por línea YA
// redondeados, que es como los valida Hacienda contra el detalle. El
// número de documento es el timestamp Unix de emisión; el ERP asigna
// su propio correlativo al procesar.
func BuildSalePayload(in BuildInput) (*BuildResult, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.Client == nil || in.Client.ID <= 0 {
		return nil, domain.ErrClientRequired
	}
	if in.SalePointID <= 0 {
		return nil, domain.ErrSalePointRequired
	}
	if in.PaymentTerm == nil || in.PaymentTerm.ID <= 0 {
		return nil, domain.ErrPaymentTermRequired
	}

	details := make([]SaleDetail, 0, len(in.Items))
	totalSubject := decimal.Zero
	totalWithVAT := decimal.Zero
	for _, it := range in.Items {
		if it.Quantity <= 0 || !it.Price.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		line := pricing.Line(it)
		totalSubject = totalSubject.Add(line.SubjectAmount)
		totalWithVAT = totalWithVAT.Add(line.SubjectAmountWithVAT)
		details = append(details, SaleDetail{
			Quantity:             it.Quantity,
			Price:                line.UnitPriceExVAT.InexactFloat64(),
			PriceWithVAT:         it.Price.InexactFloat64(),
			PriceWithoutDiscount: line.UnitPriceExVAT.InexactFloat64(),
			RetailPrice:          it.Price.InexactFloat64(),
			SubjectAmount:        line.SubjectAmount.InexactFloat64(),
			SubjectAmountWithVAT: line.SubjectAmountWithVAT.InexactFloat64(),
			AlternativeName:      it.Name,
			ArticleID:            it.ArticleID,
		})
	}
	totalTax := totalWithVAT.Sub(totalSubject)

	docType := pricing.SelectDocumentType(in.Client, in.DocumentTypeID)

	payments, err := pricing.Distribute(totalWithVAT, in.CombinedPayment, in.Distribution, in.PaymentFormID)
	if err != nil {
		return nil, err
	}
	paymentDetails := make([]SalePaymentDetail, 0, len(payments))
	for _, p := range payments {
		paymentDetails = append(paymentDetails, SalePaymentDetail{
			Amount:        pricing.Round2(p.Amount).InexactFloat64(),
			PaymentFormID: p.PaymentFormID,
		})
	}

	// Con pago combinado el ERP espera payment_form_id en null y toma
	// las formas del arreglo de pagos.
	var singleFormID *int64
	if !in.CombinedPayment {
		formID := in.PaymentFormID
		singleFormID = &formID
	}

	emission := in.Now
	emissionDate := emission.Format("2006-01-02")
	paymentDate := emission.AddDate(0, 0, in.PaymentTerm.PaymentPeriod).Format("2006-01-02")

	remark := in.Remark
	if remark == "" {
		remark = defaultRemark
	}

	attrs := SaleAttributes{
		DocumentNumber:   emission.Unix(),
		EmissionDate:     emissionDate,
		EmissionTime:     emission.Format("15:04:05"),
		RegistrationDate: emissionDate,
		CollectionDate:   emissionDate,
		PaymentDate:      paymentDate,
		Remark:           remark,
		OperationType:    "1",
		TransmissionType: "1",
		Type:             "O",
		Status:           "P",

		SubjectAmountSum:      pricing.Round2(totalSubject).InexactFloat64(),
		CollectedTaxAmountSum: pricing.Round2(totalTax).InexactFloat64(),
		SalesTotal:            pricing.Round2(totalSubject).InexactFloat64(),

		ClientID:                in.Client.ID,
		DocumentTypeID:          docType,
		SalePointID:             in.SalePointID,
		SalePointDocumentTypeID: docType,
		PaymentTermID:           in.PaymentTerm.ID,
		PaymentFormID:           singleFormID,

		Details: details,
		Taxes: []SaleTax{{
			OwnSubjectAmountTotal:    pricing.Round2(totalSubject).InexactFloat64(),
			OwnSubjectAmountTaxTotal: pricing.Round2(totalTax).InexactFloat64(),
			TaxID:                    1,
		}},
		Payments: paymentDetails,
	}

	return &BuildResult{
		Payload:        &SalePayload{Data: SaleData{Type: "sale", Attributes: attrs}},
		DocumentNumber: attrs.DocumentNumber,
		DocumentTypeID: docType,
		Subtotal:       pricing.Round2(totalSubject),
		VAT:            pricing.Round2(totalTax),
		Total:          pricing.Round2(totalWithVAT),
	}, nil
}
