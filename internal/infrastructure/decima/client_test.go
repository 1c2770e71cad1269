package decima_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/application/sales"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/infrastructure/decima"
	"github.com/jhoicas/decima-pos/pkg/config"
)

type decimaClientFixture struct {
	client *decima.Client
	server *httptest.Server
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *decimaClientFixture {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := decima.NewClient(config.DecimaConfig{
		BaseURL:    srv.URL,
		Token:      "token-prueba",
		PlatformID: "4",
		Timeout:    2 * time.Second,
	}, zerolog.Nop())
	return &decimaClientFixture{client: client, server: srv}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClient_EnviaHeadersDelERP(t *testing.T) {
	var gotAuth, gotPlatform, gotAccept string
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPlatform = r.Header.Get("Platform-Id")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := fx.client.SalePoints(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-prueba", gotAuth)
	assert.Equal(t, "4", gotPlatform)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_ArticulosNormalizaAtributos(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalogs/article", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("withMasterData"))
		assert.Equal(t, "cafe", r.URL.Query().Get("search"))
		w.Write([]byte(`{
			"data": [
				{"id": "101", "type": "article", "attributes": {
					"id": 101, "name": "Café molido 400g",
					"master_retail_price": "4.52", "master_available_balance": 12,
					"internal_reference": "CAF-01", "is_active": 1, "is_scannable": 0
				}},
				{"id": "102", "type": "article", "attributes": {
					"id": 102, "name": "Sin precio detalle",
					"master_retail_price": 0, "master_final_price": 2.26, "is_active": true
				}}
			],
			"meta": {"page": 1, "records": 120, "from": 1, "to": 2}
		}`))
	})

	articles, page, err := fx.client.Articles(context.Background(), catalog.ListQuery{Search: "cafe", PerPage: 50})
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, int64(101), articles[0].ID)
	assert.True(t, articles[0].Price.Equal(mustDecimal("4.52")), "el precio string del ERP se decodifica igual")
	assert.True(t, articles[0].IsActive, "is_active llega como 1")
	assert.False(t, articles[0].IsScannable)
	assert.Equal(t, "CAF-01", articles[0].SKU)

	assert.True(t, articles[1].Price.Equal(mustDecimal("2.26")), "sin retail price se usa el precio final")

	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 120, page.TotalRecords)
	assert.Equal(t, 3, page.TotalPages, "120 registros a 50 por página")
}

func TestClient_ClientePorIDConNRC(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/catalogs/client/7", r.URL.Path)
		w.Write([]byte(`{"data": {"id": "7", "type": "client", "attributes": {
			"id": 7, "name": "Comercial López", "nrc": "123456-7",
			"tax_id": "0614-000000-000-0", "is_vip": "1"
		}}}`))
	})

	client, err := fx.client.ClientByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), client.ID)
	assert.Equal(t, "123456-7", client.NRC)
	assert.True(t, client.IsVIP, `is_vip llega como "1"`)
}

func TestClient_ErrorHTTPEsUpstream(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":[{"detail":"mantenimiento"}]}`, http.StatusServiceUnavailable)
	})

	_, err := fx.client.PaymentTerms(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_RespuestaFueraDeContratoEsUpstream(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>mantenimiento</html>`))
	})

	_, err := fx.client.DocumentTypes(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_CreateSaleDevuelveID(t *testing.T) {
	var received map[string]any
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/income/sale", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"data": {"id": 9001, "type": "sale"}}`))
	})

	payload := &sales.SalePayload{}
	payload.Data.Type = "sale"
	payload.Data.Attributes.Remark = "Venta POS"

	id, err := fx.client.CreateSale(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, int64(9001), id)

	data := received["data"].(map[string]any)
	assert.Equal(t, "sale", data["type"])
}

func TestClient_CreateSaleSinIDFalla(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {}}`))
	})

	_, err := fx.client.CreateSale(context.Background(), &sales.SalePayload{})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestClient_PrepareElectronicInvoice(t *testing.T) {
	var received map[string]any
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/slsv/electronic-invoice/preparer", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"data": {"id": 9001}}`))
	})

	err := fx.client.PrepareElectronicInvoice(context.Background(), 9001)
	require.NoError(t, err)

	data := received["data"].(map[string]any)
	assert.Equal(t, "electronic-invoice", data["type"])
	attrs := data["attributes"].(map[string]any)
	assert.Equal(t, float64(9001), attrs["id"])
	assert.Equal(t, "S", attrs["type"])
	assert.Equal(t, "issue", attrs["operation"])
}

func TestClient_VentasNormalizaCamposAlternativos(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/income/sale", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("pager"))
		w.Write([]byte(`{
			"data": [{"id": "500", "type": "sale", "attributes": {
				"id": 500, "correlative_number": 1755000000,
				"emission_date": "2026-08-29", "client_name": "Comercial López",
				"status_name": "Emitida",
				"subject_amount_sum": "10.00", "collected_tax_amount_sum": "1.30"
			}}],
			"meta": {"page": 1, "records": 1, "from": 1, "to": 1}
		}`))
	})

	rows, _, err := fx.client.Sales(context.Background(), sales.SalesQuery{PerPage: 15})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, int64(500), rows[0].ID)
	assert.Equal(t, "1755000000", rows[0].DocumentNumber, "sin document_number se usa el correlativo")
	assert.Equal(t, "Emitida", rows[0].Status)
	assert.True(t, rows[0].Total.Equal(mustDecimal("11.30")), "sin total se suma base + IVA")
}

func TestClient_VentaPorIDConDetalle(t *testing.T) {
	fx := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/income/sale/500", r.URL.Path)
		w.Write([]byte(`{"data": {"id": "500", "type": "sale", "attributes": {
			"id": 500, "document_number": 1755000000, "client_name": "Comercial López",
			"total": "11.30", "subject_amount_sum": "10.00", "collected_tax_amount_sum": "1.30",
			"details": [
				{"quantity": 2, "price_with_vat": "4.52", "subject_amount_with_vat": "9.04", "alternative_name": "Café molido 400g"},
				{"quantity": 2, "price_with_vat": "1.13", "subject_amount_with_vat": "2.26", "alternative_name": "Azúcar 1lb"}
			]
		}}}`))
	})

	summary, lines, err := fx.client.SaleByID(context.Background(), 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), summary.ID)
	require.Len(t, lines, 2)
	assert.Equal(t, "Café molido 400g", lines[0].Name)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.True(t, lines[0].SubjectAmountWithVAT.Equal(mustDecimal("9.04")))
}
