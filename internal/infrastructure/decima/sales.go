package decima

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/application/sales"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

var (
	_ sales.SaleSubmitter = (*Client)(nil)
	_ sales.SaleLister    = (*Client)(nil)
)

// CreateSale registra la venta en el ERP (POST income/sale) y devuelve
// el id asignado.
func (c *Client) CreateSale(ctx context.Context, payload *sales.SalePayload) (int64, error) {
	env, err := c.send(ctx, http.MethodPost, "/income/sale", payload)
	if err != nil {
		return 0, err
	}
	resources, err := env.resources()
	if err != nil {
		return 0, wrapContract(err)
	}
	if len(resources) == 0 {
		return 0, fmt.Errorf("%w: la respuesta de la venta no trae id", domain.ErrUpstream)
	}
	id, err := resources[0].ID.Int64()
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id de venta inválido %q", domain.ErrUpstream, resources[0].ID.String())
	}
	c.log.Info().Int64("sale_id", id).Msg("venta creada en el ERP")
	return id, nil
}

// electronicInvoiceRequest cuerpo del preparador de DTE. Type "S" es
// venta y operation "issue" emite el documento.
type electronicInvoiceRequest struct {
	Data struct {
		Type       string `json:"type"`
		Attributes struct {
			ID        int64  `json:"id"`
			Type      string `json:"type"`
			Operation string `json:"operation"`
		} `json:"attributes"`
	} `json:"data"`
}

// PrepareElectronicInvoice dispara la emisión del DTE de una venta ya
// creada (PUT slsv/electronic-invoice/preparer).
func (c *Client) PrepareElectronicInvoice(ctx context.Context, saleID int64) error {
	var body electronicInvoiceRequest
	body.Data.Type = "electronic-invoice"
	body.Data.Attributes.ID = saleID
	body.Data.Attributes.Type = "S"
	body.Data.Attributes.Operation = "issue"

	if _, err := c.send(ctx, http.MethodPut, "/slsv/electronic-invoice/preparer", body); err != nil {
		return err
	}
	c.log.Info().Int64("sale_id", saleID).Msg("DTE preparado")
	return nil
}

// saleAttrs atributos del listado de ventas. Varios campos llegan con
// nombres alternativos según la versión del endpoint; normalize escoge
// el primero presente.
type saleAttrs struct {
	ID                flexInt64       `json:"id"`
	SaleOrderNumber   json.Number     `json:"sale_order_number"`
	CorrelativeNumber json.Number     `json:"correlative_number"`
	DocumentNumber    json.Number     `json:"document_number"`
	DocumentTypeName  string          `json:"document_type_name"`
	EmissionDate      string          `json:"emission_date"`
	RegistrationDate  string          `json:"registration_date"`
	CreatedAt         string          `json:"created_at"`
	PaymentDate       string          `json:"payment_date"`
	CollectionDate    string          `json:"collection_date"`
	ClientID          flexInt64       `json:"client_id"`
	ClientName        string          `json:"client_name"`
	PaymentTermName   string          `json:"payment_term_name"`
	PaymentCondition  string          `json:"payment_condition"`
	Description       string          `json:"description"`
	Remark            string          `json:"remark"`
	StatusName        string          `json:"status_name"`
	Status            string          `json:"status"`
	Total             decimal.Decimal `json:"total"`
	SalesTotal        decimal.Decimal `json:"sales_total"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	SubjectAmountSum  decimal.Decimal `json:"subject_amount_sum"`
	TaxAmountSum      decimal.Decimal `json:"collected_tax_amount_sum"`
}

func (a saleAttrs) normalize(fallbackID int64) entity.SaleSummary {
	id := int64(a.ID)
	if id == 0 {
		id = fallbackID
	}
	total := a.Total
	if total.IsZero() {
		total = a.GrandTotal
	}
	if total.IsZero() && !a.SubjectAmountSum.IsZero() {
		total = a.SubjectAmountSum.Add(a.TaxAmountSum)
	}
	return entity.SaleSummary{
		ID:               id,
		SaleOrderNumber:  coalesce(a.SaleOrderNumber.String(), a.CorrelativeNumber.String()),
		DocumentNumber:   coalesce(a.DocumentNumber.String(), a.CorrelativeNumber.String(), strconv.FormatInt(id, 10)),
		DocumentType:     a.DocumentTypeName,
		EmissionDate:     coalesce(a.EmissionDate, a.CreatedAt),
		RegistrationDate: coalesce(a.RegistrationDate, a.CreatedAt),
		PaymentDate:      a.PaymentDate,
		CollectionDate:   a.CollectionDate,
		ClientID:         int64(a.ClientID),
		ClientName:       a.ClientName,
		PaymentCondition: coalesce(a.PaymentTermName, a.PaymentCondition),
		Description:      coalesce(a.Description, a.Remark),
		Status:           coalesce(a.StatusName, a.Status),
		Total:            total,
		SubjectAmountSum: a.SubjectAmountSum,
		TaxAmountSum:     a.TaxAmountSum,
	}
}

// Sales lista ventas registradas (GET income/sale), más recientes
// primero.
func (c *Client) Sales(ctx context.Context, q sales.SalesQuery) ([]entity.SaleSummary, catalog.Page, error) {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 15
	}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	query := url.Values{}
	query.Set("pager", "true")
	query.Set("rows", strconv.Itoa(perPage))
	query.Set("page", strconv.Itoa(page))
	query.Set("returnPlainData", "true")
	query.Set("indexed", "true")
	query.Set("orderBy", `[{"field":"id","sort":"desc"}]`)
	if q.Date != "" {
		query.Set("emission_date", q.Date)
	}

	env, err := c.get(ctx, "/income/sale", query)
	if err != nil {
		return nil, catalog.Page{}, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, catalog.Page{}, wrapContract(err)
	}

	out := make([]entity.SaleSummary, 0, len(resources))
	for _, res := range resources {
		var a saleAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		fallbackID, _ := res.ID.Int64()
		out = append(out, a.normalize(fallbackID))
	}
	return out, paginationFrom(env, catalog.ListQuery{Page: page, PerPage: perPage}), nil
}

// saleDetailAttrs línea del detalle de una venta registrada.
type saleDetailAttrs struct {
	Quantity             flexInt64       `json:"quantity"`
	PriceWithVAT         decimal.Decimal `json:"price_with_vat"`
	SubjectAmountWithVAT decimal.Decimal `json:"subject_amount_with_vat"`
	AlternativeName      string          `json:"alternative_name"`
	ArticleName          string          `json:"article_name"`
}

// saleShowAttrs atributos del detalle de venta: el resumen más el
// arreglo de líneas.
type saleShowAttrs struct {
	saleAttrs
	Details []saleDetailAttrs `json:"details"`
}

// SaleByID obtiene una venta puntual con su detalle. Devuelve
// domain.ErrNotFound si el ERP no la conoce.
func (c *Client) SaleByID(ctx context.Context, id int64) (*entity.SaleSummary, []entity.SaleLine, error) {
	env, err := c.get(ctx, "/income/sale/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, nil, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, nil, wrapContract(err)
	}
	if len(resources) == 0 {
		return nil, nil, domain.ErrNotFound
	}
	var a saleShowAttrs
	if err := json.Unmarshal(resources[0].Attributes, &a); err != nil {
		return nil, nil, wrapContract(err)
	}
	summary := a.normalize(id)
	lines := make([]entity.SaleLine, 0, len(a.Details))
	for _, d := range a.Details {
		lines = append(lines, entity.SaleLine{
			Name:                 coalesce(d.AlternativeName, d.ArticleName),
			Quantity:             int64(d.Quantity),
			PriceWithVAT:         d.PriceWithVAT,
			SubjectAmountWithVAT: d.SubjectAmountWithVAT,
		})
	}
	return &summary, lines, nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
