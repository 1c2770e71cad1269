package decima

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

var _ catalog.ERPCatalog = (*Client)(nil)

const defaultPerPage = 50

// articleAttrs atributos del endpoint catalogs/article. El precio de
// venta real viene en master_retail_price; master_final_price es el
// respaldo cuando el artículo no tiene precio de detalle.
type articleAttrs struct {
	ID                     flexInt64       `json:"id"`
	Name                   string          `json:"name"`
	MasterRetailPrice      decimal.Decimal `json:"master_retail_price"`
	MasterFinalPrice       decimal.Decimal `json:"master_final_price"`
	MasterAvailableBalance decimal.Decimal `json:"master_available_balance"`
	ImageURL               string          `json:"image_url"`
	CategoryName           string          `json:"category_name"`
	BrandName              string          `json:"brand_name"`
	InternalReference      string          `json:"internal_reference"`
	Description            string          `json:"description"`
	Barcode                string          `json:"barcode"`
	UnitMeasureName        string          `json:"unit_measure_name"`
	UnitMeasureSymbol      string          `json:"unit_measure_symbol"`
	IsActive               flexBool        `json:"is_active"`
	IsScannable            flexBool        `json:"is_scannable"`
}

// Articles lista artículos del catálogo con los datos maestros de
// precio y existencias incluidos.
func (c *Client) Articles(ctx context.Context, q catalog.ListQuery) ([]entity.Article, catalog.Page, error) {
	query := listQueryValues(q)
	query.Set("withMasterData", "true")
	query.Set("withOperationData", "true")
	query.Set("orderBy", `[{"field":"id","sort":"desc"}]`)

	env, err := c.get(ctx, "/catalogs/article", query)
	if err != nil {
		return nil, catalog.Page{}, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, catalog.Page{}, wrapContract(err)
	}

	articles := make([]entity.Article, 0, len(resources))
	for _, res := range resources {
		var a articleAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		price := a.MasterRetailPrice
		if price.IsZero() {
			price = a.MasterFinalPrice
		}
		articles = append(articles, entity.Article{
			ID:          int64(a.ID),
			Name:        a.Name,
			Price:       price,
			Stock:       a.MasterAvailableBalance,
			Image:       a.ImageURL,
			Category:    a.CategoryName,
			Brand:       a.BrandName,
			SKU:         a.InternalReference,
			Description: a.Description,
			Barcode:     a.Barcode,
			UnitMeasure: a.UnitMeasureName,
			UnitSymbol:  a.UnitMeasureSymbol,
			IsActive:    bool(a.IsActive),
			IsScannable: bool(a.IsScannable),
		})
	}
	return articles, paginationFrom(env, q), nil
}

// clientAttrs atributos del endpoint catalogs/client.
type clientAttrs struct {
	ID         flexInt64 `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone_number"`
	TaxID      string    `json:"tax_id"`
	NRC        string    `json:"nrc"`
	DUI        string    `json:"single_identity_document_number"`
	CityName   string    `json:"city_name"`
	StateName  string    `json:"state_name"`
	Street1    string    `json:"street1"`
	IsVIP      flexBool  `json:"is_vip"`
	IsEmployee flexBool  `json:"is_employee"`
}

func (a clientAttrs) toEntity() entity.Client {
	return entity.Client{
		ID:         int64(a.ID),
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		TaxID:      a.TaxID,
		NRC:        a.NRC,
		DUI:        a.DUI,
		City:       a.CityName,
		State:      a.StateName,
		Address:    a.Street1,
		IsVIP:      bool(a.IsVIP),
		IsEmployee: bool(a.IsEmployee),
	}
}

// Clients lista clientes del catálogo.
func (c *Client) Clients(ctx context.Context, q catalog.ListQuery) ([]entity.Client, catalog.Page, error) {
	env, err := c.get(ctx, "/catalogs/client", listQueryValues(q))
	if err != nil {
		return nil, catalog.Page{}, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, catalog.Page{}, wrapContract(err)
	}

	clients := make([]entity.Client, 0, len(resources))
	for _, res := range resources {
		var a clientAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		clients = append(clients, a.toEntity())
	}
	return clients, paginationFrom(env, q), nil
}

// ClientByID obtiene un cliente puntual. Devuelve domain.ErrNotFound si
// el ERP no lo conoce.
func (c *Client) ClientByID(ctx context.Context, id int64) (*entity.Client, error) {
	env, err := c.get(ctx, "/catalogs/client/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, wrapContract(err)
	}
	if len(resources) == 0 {
		return nil, domain.ErrNotFound
	}
	var a clientAttrs
	if err := json.Unmarshal(resources[0].Attributes, &a); err != nil {
		return nil, wrapContract(err)
	}
	client := a.toEntity()
	if client.ID == 0 {
		client.ID = id
	}
	return &client, nil
}

// documentTypeAttrs atributos del endpoint slsv/catalogs/document-type.
type documentTypeAttrs struct {
	ID                  flexInt64 `json:"id"`
	Name                string    `json:"name"`
	Code                string    `json:"code"`
	IsElectronicInvoice flexBool  `json:"is_electronic_invoice"`
}

// DocumentTypes lista los tipos de documento tributario.
func (c *Client) DocumentTypes(ctx context.Context) ([]entity.DocumentType, error) {
	env, err := c.get(ctx, "/slsv/catalogs/document-type", nil)
	if err != nil {
		return nil, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, wrapContract(err)
	}
	out := make([]entity.DocumentType, 0, len(resources))
	for _, res := range resources {
		var a documentTypeAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		out = append(out, entity.DocumentType{
			ID:                  int64(a.ID),
			Name:                a.Name,
			Code:                a.Code,
			IsElectronicInvoice: bool(a.IsElectronicInvoice),
		})
	}
	return out, nil
}

// paymentTermAttrs atributos del endpoint catalogs/payment-term.
type paymentTermAttrs struct {
	ID            flexInt64 `json:"id"`
	Name          string    `json:"name"`
	PaymentPeriod flexInt64 `json:"payment_period"`
}

// PaymentTerms lista las condiciones de pago.
func (c *Client) PaymentTerms(ctx context.Context) ([]entity.PaymentTerm, error) {
	env, err := c.get(ctx, "/catalogs/payment-term", nil)
	if err != nil {
		return nil, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, wrapContract(err)
	}
	out := make([]entity.PaymentTerm, 0, len(resources))
	for _, res := range resources {
		var a paymentTermAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		out = append(out, entity.PaymentTerm{
			ID:            int64(a.ID),
			Name:          a.Name,
			PaymentPeriod: int(a.PaymentPeriod),
		})
	}
	return out, nil
}

// paymentFormAttrs atributos del endpoint catalogs/payment-form.
type paymentFormAttrs struct {
	ID                     flexInt64 `json:"id"`
	Name                   string    `json:"name"`
	IsCash                 flexBool  `json:"is_cash"`
	BankAccountIsRequested flexBool  `json:"bank_account_is_requested"`
	IsVisibleOnSales       flexBool  `json:"is_visible_on_sales"`
}

// PaymentForms lista las formas de pago (todas; el filtro de visibles
// en ventas lo aplica la capa de aplicación).
func (c *Client) PaymentForms(ctx context.Context) ([]entity.PaymentForm, error) {
	env, err := c.get(ctx, "/catalogs/payment-form", nil)
	if err != nil {
		return nil, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, wrapContract(err)
	}
	out := make([]entity.PaymentForm, 0, len(resources))
	for _, res := range resources {
		var a paymentFormAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		out = append(out, entity.PaymentForm{
			ID:                     int64(a.ID),
			Name:                   a.Name,
			IsCash:                 bool(a.IsCash),
			BankAccountIsRequested: bool(a.BankAccountIsRequested),
			IsVisibleOnSales:       bool(a.IsVisibleOnSales),
		})
	}
	return out, nil
}

// salePointAttrs atributos del endpoint catalogs/sale-point.
type salePointAttrs struct {
	ID          flexInt64 `json:"id"`
	Name        string    `json:"name"`
	Street      string    `json:"street"`
	ControlCode string    `json:"control_code"`
}

// SalePoints lista los puntos de venta de la cuenta.
func (c *Client) SalePoints(ctx context.Context) ([]entity.SalePoint, error) {
	env, err := c.get(ctx, "/catalogs/sale-point", nil)
	if err != nil {
		return nil, err
	}
	resources, err := env.resources()
	if err != nil {
		return nil, wrapContract(err)
	}
	out := make([]entity.SalePoint, 0, len(resources))
	for _, res := range resources {
		var a salePointAttrs
		if err := json.Unmarshal(res.Attributes, &a); err != nil {
			continue
		}
		out = append(out, entity.SalePoint{
			ID:          int64(a.ID),
			Name:        a.Name,
			Street:      a.Street,
			ControlCode: a.ControlCode,
		})
	}
	return out, nil
}

func listQueryValues(q catalog.ListQuery) url.Values {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("per_page", strconv.Itoa(perPage))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	return values
}

// paginationFrom arma la paginación desde el meta del sobre; el ERP no
// reporta total de páginas, se deriva de records y per_page.
func paginationFrom(env *envelope, q catalog.ListQuery) catalog.Page {
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	page := catalog.Page{CurrentPage: 1, PerPage: perPage}
	if env.Meta == nil {
		return page
	}
	if env.Meta.Page > 0 {
		page.CurrentPage = env.Meta.Page
	}
	page.TotalRecords = env.Meta.Records
	page.TotalPages = (env.Meta.Records + perPage - 1) / perPage
	page.From = env.Meta.From
	page.To = env.Meta.To
	return page
}

func wrapContract(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
}
