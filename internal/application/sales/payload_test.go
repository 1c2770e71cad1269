package sales_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decima-pos/internal/application/sales"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/jhoicas/decima-pos/internal/domain/pricing"
)

var testEmission = time.Date(2026, 3, 14, 10, 30, 45, 0, time.Local)

func buildTestInput() sales.BuildInput {
	return sales.BuildInput{
		Items: []entity.CartItem{
			{ArticleID: 101, Name: "Café molido 400g", Price: decimal.NewFromFloat(4.52), Quantity: 2},
			{ArticleID: 205, Name: "Azúcar 1lb", Price: decimal.NewFromFloat(1.13), Quantity: 3},
		},
		Client:        &entity.Client{ID: 7, Name: "Comercial López"},
		SalePointID:   1,
		PaymentTerm:   &entity.PaymentTerm{ID: 1, Name: "Contado", PaymentPeriod: 0},
		PaymentFormID: 1,
		Now:           testEmission,
	}
}

func TestBuildSalePayload_MontosDelDetalle(t *testing.T) {
	res, err := sales.BuildSalePayload(buildTestInput())
	require.NoError(t, err)

	attrs := res.Payload.Data.Attributes
	require.Len(t, attrs.Details, 2)

	// 4.52 con IVA → 4.00 sin IVA; 2 unidades → 8.00 / 9.04
	d0 := attrs.Details[0]
	assert.Equal(t, int64(2), d0.Quantity)
	assert.InDelta(t, 4.00, d0.Price, 0.001)
	assert.InDelta(t, 4.52, d0.PriceWithVAT, 0.001)
	assert.InDelta(t, 8.00, d0.SubjectAmount, 0.001)
	assert.InDelta(t, 9.04, d0.SubjectAmountWithVAT, 0.001)
	assert.Equal(t, "Café molido 400g", d0.AlternativeName)
	assert.Equal(t, int64(101), d0.ArticleID)

	// 1.13 con IVA → 1.00 sin IVA; 3 unidades → 3.00 / 3.39
	d1 := attrs.Details[1]
	assert.InDelta(t, 3.00, d1.SubjectAmount, 0.001)
	assert.InDelta(t, 3.39, d1.SubjectAmountWithVAT, 0.001)
}

func TestBuildSalePayload_TotalesCuadranConElDetalle(t *testing.T) {
	res, err := sales.BuildSalePayload(buildTestInput())
	require.NoError(t, err)

	attrs := res.Payload.Data.Attributes
	sumSubject := 0.0
	sumWithVAT := 0.0
	for _, d := range attrs.Details {
		sumSubject += d.SubjectAmount
		sumWithVAT += d.SubjectAmountWithVAT
	}
	assert.InDelta(t, sumSubject, attrs.SubjectAmountSum, 0.005)
	assert.InDelta(t, sumWithVAT-sumSubject, attrs.CollectedTaxAmountSum, 0.005)
	assert.InDelta(t, sumSubject, attrs.SalesTotal, 0.005)

	require.Len(t, attrs.Taxes, 1)
	assert.Equal(t, int64(1), attrs.Taxes[0].TaxID)
	assert.InDelta(t, attrs.SubjectAmountSum, attrs.Taxes[0].OwnSubjectAmountTotal, 0.001)
	assert.InDelta(t, attrs.CollectedTaxAmountSum, attrs.Taxes[0].OwnSubjectAmountTaxTotal, 0.001)

	assert.True(t, res.Subtotal.Add(res.VAT).Equal(res.Total),
		"subtotal + IVA debe igualar el total del resultado")
}

func TestBuildSalePayload_PagoSimple(t *testing.T) {
	res, err := sales.BuildSalePayload(buildTestInput())
	require.NoError(t, err)

	attrs := res.Payload.Data.Attributes
	require.Len(t, attrs.Payments, 1)
	assert.InDelta(t, 12.43, attrs.Payments[0].Amount, 0.001, "9.04 + 3.39")
	assert.Equal(t, int64(1), attrs.Payments[0].PaymentFormID)
	require.NotNil(t, attrs.PaymentFormID)
	assert.Equal(t, int64(1), *attrs.PaymentFormID)
}

func TestBuildSalePayload_PagoCombinado(t *testing.T) {
	in := buildTestInput()
	in.CombinedPayment = true
	in.Distribution = []pricing.PaymentEntry{
		{PaymentFormID: 1, Amount: decimal.NewFromFloat(10.00)},
		{PaymentFormID: 2, Amount: decimal.NewFromFloat(2.43)},
		{PaymentFormID: 4, Amount: decimal.Zero}, // se descarta
	}

	res, err := sales.BuildSalePayload(in)
	require.NoError(t, err)

	attrs := res.Payload.Data.Attributes
	require.Len(t, attrs.Payments, 2, "las entradas en cero no se envían")
	assert.Nil(t, attrs.PaymentFormID, "con pago combinado payment_form_id va en null")
}

func TestBuildSalePayload_PagoCombinadoDescuadradoFalla(t *testing.T) {
	in := buildTestInput()
	in.CombinedPayment = true
	in.Distribution = []pricing.PaymentEntry{
		{PaymentFormID: 1, Amount: decimal.NewFromFloat(5.00)},
	}

	_, err := sales.BuildSalePayload(in)
	assert.ErrorIs(t, err, domain.ErrPaymentMismatch)
}

func TestBuildSalePayload_TipoDocumentoSegunNRC(t *testing.T) {
	in := buildTestInput()
	in.Client.NRC = "123456-7"

	res, err := sales.BuildSalePayload(in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DocumentTypeID, "cliente con NRC emite Crédito Fiscal")
	assert.Equal(t, res.DocumentTypeID, res.Payload.Data.Attributes.DocumentTypeID)
	assert.Equal(t, res.DocumentTypeID, res.Payload.Data.Attributes.SalePointDocumentTypeID)
}

func TestBuildSalePayload_TipoDocumentoExplicitoGana(t *testing.T) {
	in := buildTestInput()
	in.Client.NRC = "123456-7"
	in.DocumentTypeID = 1

	res, err := sales.BuildSalePayload(in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DocumentTypeID)
}

func TestBuildSalePayload_FechasYNumeroDeDocumento(t *testing.T) {
	in := buildTestInput()
	in.PaymentTerm = &entity.PaymentTerm{ID: 4, Name: "Crédito 30 días", PaymentPeriod: 30}

	res, err := sales.BuildSalePayload(in)
	require.NoError(t, err)

	attrs := res.Payload.Data.Attributes
	assert.Equal(t, "2026-03-14", attrs.EmissionDate)
	assert.Equal(t, "10:30:45", attrs.EmissionTime)
	assert.Equal(t, "2026-03-14", attrs.RegistrationDate)
	assert.Equal(t, "2026-03-14", attrs.CollectionDate)
	assert.Equal(t, "2026-04-13", attrs.PaymentDate, "la fecha de pago corre con el plazo del crédito")
	assert.Equal(t, testEmission.Unix(), attrs.DocumentNumber)
	assert.Equal(t, int64(4), attrs.PaymentTermID)
}

func TestBuildSalePayload_ConstantesDelERP(t *testing.T) {
	res, err := sales.BuildSalePayload(buildTestInput())
	require.NoError(t, err)

	attrs := res.Payload.Data.Attributes
	assert.Equal(t, "sale", res.Payload.Data.Type)
	assert.Equal(t, "P", attrs.Status)
	assert.Equal(t, "1", attrs.OperationType)
	assert.Equal(t, "1", attrs.TransmissionType)
	assert.Equal(t, "O", attrs.Type)
	assert.Equal(t, "Venta POS", attrs.Remark)
	assert.Nil(t, attrs.IncomeType)
}

func TestBuildSalePayload_Validaciones(t *testing.T) {
	in := buildTestInput()
	in.Items = nil
	_, err := sales.BuildSalePayload(in)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	in = buildTestInput()
	in.Client = nil
	_, err = sales.BuildSalePayload(in)
	assert.ErrorIs(t, err, domain.ErrClientRequired)

	in = buildTestInput()
	in.SalePointID = 0
	_, err = sales.BuildSalePayload(in)
	assert.ErrorIs(t, err, domain.ErrSalePointRequired)

	in = buildTestInput()
	in.PaymentTerm = nil
	_, err = sales.BuildSalePayload(in)
	assert.ErrorIs(t, err, domain.ErrPaymentTermRequired)

	in = buildTestInput()
	in.Items[0].Quantity = 0
	_, err = sales.BuildSalePayload(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
