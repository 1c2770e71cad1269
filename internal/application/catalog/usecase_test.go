package catalog_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jhoicas/decima-pos/internal/application/catalog"
	"github.com/jhoicas/decima-pos/internal/application/dto"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeERP implementación en memoria del puerto ERPCatalog. Con down en
// true todo devuelve ErrUpstream, simulando el ERP caído.
type fakeERP struct {
	down         bool
	articles     []entity.Article
	clients      []entity.Client
	paymentForms []entity.PaymentForm
}

func (f *fakeERP) Articles(_ context.Context, _ catalog.ListQuery) ([]entity.Article, catalog.Page, error) {
	if f.down {
		return nil, catalog.Page{}, fmt.Errorf("GET article: %w", domain.ErrUpstream)
	}
	return f.articles, catalog.Page{CurrentPage: 1, TotalPages: 1, TotalRecords: len(f.articles), PerPage: 50}, nil
}

func (f *fakeERP) Clients(_ context.Context, _ catalog.ListQuery) ([]entity.Client, catalog.Page, error) {
	if f.down {
		return nil, catalog.Page{}, fmt.Errorf("GET client: %w", domain.ErrUpstream)
	}
	return f.clients, catalog.Page{CurrentPage: 1, TotalPages: 1, TotalRecords: len(f.clients), PerPage: 50}, nil
}

func (f *fakeERP) ClientByID(_ context.Context, id int64) (*entity.Client, error) {
	if f.down {
		return nil, fmt.Errorf("GET client: %w", domain.ErrUpstream)
	}
	for i := range f.clients {
		if f.clients[i].ID == id {
			return &f.clients[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeERP) DocumentTypes(_ context.Context) ([]entity.DocumentType, error) {
	if f.down {
		return nil, fmt.Errorf("GET document-type: %w", domain.ErrUpstream)
	}
	return []entity.DocumentType{{ID: 1, Name: "Factura"}}, nil
}

func (f *fakeERP) PaymentTerms(_ context.Context) ([]entity.PaymentTerm, error) {
	if f.down {
		return nil, fmt.Errorf("GET payment-term: %w", domain.ErrUpstream)
	}
	return []entity.PaymentTerm{{ID: 1, Name: "Contado", PaymentPeriod: 0}}, nil
}

func (f *fakeERP) PaymentForms(_ context.Context) ([]entity.PaymentForm, error) {
	if f.down {
		return nil, fmt.Errorf("GET payment-form: %w", domain.ErrUpstream)
	}
	return f.paymentForms, nil
}

func (f *fakeERP) SalePoints(_ context.Context) ([]entity.SalePoint, error) {
	if f.down {
		return nil, fmt.Errorf("GET sale-point: %w", domain.ErrUpstream)
	}
	return []entity.SalePoint{{ID: 1, Name: "Caja 1"}}, nil
}

func TestDocumentTypes_RespaldoConERPCaido(t *testing.T) {
	uc := catalog.NewCatalogUseCase(&fakeERP{down: true})

	types, err := uc.DocumentTypes(context.Background())
	require.NoError(t, err, "con ERP caído debe responder el catálogo de respaldo")
	require.Len(t, types, 4)
	assert.Equal(t, int64(1), types[0].ID)
	assert.Equal(t, "Factura de Consumidor Final", types[0].Name)
	assert.Equal(t, "Comprobante de Crédito Fiscal (CCF)", types[1].Name)
}

func TestPaymentTerms_RespaldoIncluyeDisplayText(t *testing.T) {
	uc := catalog.NewCatalogUseCase(&fakeERP{down: true})

	terms, err := uc.PaymentTerms(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 4)
	assert.Equal(t, "Contado", terms[0].DisplayText)
	assert.Equal(t, 30, terms[3].PaymentPeriod)
}

func TestSalePoints_RespaldoConERPCaido(t *testing.T) {
	uc := catalog.NewCatalogUseCase(&fakeERP{down: true})

	points, err := uc.SalePoints(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "S001P001", points[0].ControlCode)
}

func TestPaymentForms_FiltraNoVisiblesEnVentas(t *testing.T) {
	erp := &fakeERP{paymentForms: []entity.PaymentForm{
		{ID: 1, Name: "Efectivo", IsCash: true, IsVisibleOnSales: true},
		{ID: 3, Name: "Retención interna", IsVisibleOnSales: false},
		{ID: 4, Name: "Cheque recepción", IsVisibleOnSales: true},
	}}
	uc := catalog.NewCatalogUseCase(erp)

	forms, err := uc.PaymentForms(context.Background())
	require.NoError(t, err)
	require.Len(t, forms, 2, "solo deben salir las formas visibles en ventas")
	assert.Equal(t, int64(1), forms[0].ID)
	assert.Equal(t, int64(4), forms[1].ID)
}

func TestArticles_SinRespaldoPropagaError(t *testing.T) {
	uc := catalog.NewCatalogUseCase(&fakeERP{down: true})

	_, err := uc.Articles(context.Background(), dto.ArticleListQuery{})
	require.Error(t, err, "artículos no tienen catálogo de respaldo")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestArticles_FiltraInactivosYBuscaSinAcentos(t *testing.T) {
	erp := &fakeERP{articles: []entity.Article{
		{ID: 1, Name: "Café molido", Price: decimal.NewFromFloat(4.50), IsActive: true},
		{ID: 2, Name: "Cafetera", Price: decimal.NewFromFloat(25.00), IsActive: false},
		{ID: 3, Name: "Azúcar", Price: decimal.NewFromFloat(1.10), IsActive: true},
	}}
	uc := catalog.NewCatalogUseCase(erp)

	res, err := uc.Articles(context.Background(), dto.ArticleListQuery{Search: "cafe"})
	require.NoError(t, err)
	require.Len(t, res.Articles, 1, "la cafetera está inactiva y el azúcar no matchea")
	assert.Equal(t, int64(1), res.Articles[0].ID)
}

func TestClients_BuscaPorNRC(t *testing.T) {
	erp := &fakeERP{clients: []entity.Client{
		{ID: 10, Name: "Comercial López", NRC: "123456-7"},
		{ID: 11, Name: "Tienda El Sol"},
	}}
	uc := catalog.NewCatalogUseCase(erp)

	res, err := uc.Clients(context.Background(), dto.ClientListQuery{Search: "123456"})
	require.NoError(t, err)
	require.Len(t, res.Clients, 1)
	assert.Equal(t, int64(10), res.Clients[0].ID)
	assert.Equal(t, "123456-7", res.Clients[0].NRC)
}
