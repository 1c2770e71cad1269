package catalog

import (
	"context"
	"errors"

	"github.com/jhoicas/decima-pos/internal/application/dto"
	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/internal/domain/entity"
)

// CatalogUseCase expone los catálogos del ERP normalizados para la
// caja. Los catálogos chicos (tipos de documento, condiciones y formas
// de pago, puntos de venta) degradan a valores de respaldo si el ERP
// está caído; artículos y clientes no tienen respaldo razonable y
// propagan el error.
type CatalogUseCase struct {
	erp ERPCatalog
}

// NewCatalogUseCase construye el caso de uso de catálogos.
func NewCatalogUseCase(erp ERPCatalog) *CatalogUseCase {
	return &CatalogUseCase{erp: erp}
}

// Articles lista artículos con búsqueda y paginación del ERP. El
// filtro de búsqueda se refina localmente ignorando acentos porque el
// ERP hace match exacto de bytes.
func (uc *CatalogUseCase) Articles(ctx context.Context, q dto.ArticleListQuery) (*dto.ArticleListResponse, error) {
	arts, page, err := uc.erp.Articles(ctx, ListQuery{Search: q.Search, Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleResponse, 0, len(arts))
	for _, a := range arts {
		if !a.IsActive {
			continue
		}
		if q.Search != "" && !MatchesSearch(q.Search, a.Name, a.SKU, a.Barcode, a.Category, a.Brand) {
			continue
		}
		out = append(out, toArticleResponse(a))
	}
	return &dto.ArticleListResponse{Articles: out, Pagination: toPagination(page)}, nil
}

// Clients lista clientes con búsqueda y paginación del ERP.
func (uc *CatalogUseCase) Clients(ctx context.Context, q dto.ClientListQuery) (*dto.ClientListResponse, error) {
	clients, page, err := uc.erp.Clients(ctx, ListQuery{Search: q.Search, Page: q.Page, PerPage: q.PerPage})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		if q.Search != "" && !MatchesSearch(q.Search, c.Name, c.TaxID, c.NRC, c.DUI, c.Email) {
			continue
		}
		out = append(out, toClientResponse(c))
	}
	return &dto.ClientListResponse{Clients: out, Pagination: toPagination(page)}, nil
}

// DocumentTypes lista tipos de documento; respaldo local si el ERP falla.
func (uc *CatalogUseCase) DocumentTypes(ctx context.Context) ([]dto.DocumentTypeResponse, error) {
	types, err := uc.erp.DocumentTypes(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		types = fallbackDocumentTypes()
	}
	out := make([]dto.DocumentTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.DocumentTypeResponse{
			ID:                  t.ID,
			Name:                t.Name,
			Code:                t.Code,
			IsElectronicInvoice: t.IsElectronicInvoice,
		})
	}
	return out, nil
}

// PaymentTerms lista condiciones de pago; respaldo local si el ERP falla.
func (uc *CatalogUseCase) PaymentTerms(ctx context.Context) ([]dto.PaymentTermResponse, error) {
	terms, err := uc.erp.PaymentTerms(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		terms = fallbackPaymentTerms()
	}
	out := make([]dto.PaymentTermResponse, 0, len(terms))
	for _, t := range terms {
		out = append(out, dto.PaymentTermResponse{
			ID:            t.ID,
			Name:          t.Name,
			PaymentPeriod: t.PaymentPeriod,
			DisplayText:   t.DisplayText(),
		})
	}
	return out, nil
}

// PaymentForms lista formas de pago visibles en ventas; respaldo local
// si el ERP falla.
func (uc *CatalogUseCase) PaymentForms(ctx context.Context) ([]dto.PaymentFormResponse, error) {
	forms, err := uc.erp.PaymentForms(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		forms = fallbackPaymentForms()
	}
	out := make([]dto.PaymentFormResponse, 0, len(forms))
	for _, f := range forms {
		if !f.IsVisibleOnSales {
			continue
		}
		out = append(out, dto.PaymentFormResponse{
			ID:                     f.ID,
			Name:                   f.Name,
			IsCash:                 f.IsCash,
			BankAccountIsRequested: f.BankAccountIsRequested,
		})
	}
	return out, nil
}

// SalePoints lista puntos de venta; respaldo local si el ERP falla.
func (uc *CatalogUseCase) SalePoints(ctx context.Context) ([]dto.SalePointResponse, error) {
	points, err := uc.erp.SalePoints(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUpstream) {
			return nil, err
		}
		points = fallbackSalePoints()
	}
	out := make([]dto.SalePointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SalePointResponse{
			ID:          p.ID,
			Name:        p.Name,
			Street:      p.Street,
			ControlCode: p.ControlCode,
		})
	}
	return out, nil
}

func toArticleResponse(a entity.Article) dto.ArticleResponse {
	return dto.ArticleResponse{
		ID:          a.ID,
		Name:        a.Name,
		Price:       a.Price,
		Stock:       a.Stock,
		Image:       a.Image,
		Category:    a.Category,
		Brand:       a.Brand,
		SKU:         a.SKU,
		Description: a.Description,
		Barcode:     a.Barcode,
		UnitMeasure: a.UnitMeasure,
		UnitSymbol:  a.UnitSymbol,
		IsScannable: a.IsScannable,
	}
}

func toClientResponse(c entity.Client) dto.ClientResponse {
	return dto.ClientResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		TaxID:      c.TaxID,
		NRC:        c.NRC,
		DUI:        c.DUI,
		City:       c.City,
		State:      c.State,
		Address:    c.Address,
		IsVIP:      c.IsVIP,
		IsEmployee: c.IsEmployee,
	}
}

func toPagination(p Page) dto.Pagination {
	return dto.Pagination{
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		TotalRecords: p.TotalRecords,
		PerPage:      p.PerPage,
		From:         p.From,
		To:           p.To,
	}
}
